package seed

import (
	"context"
	"fmt"

	"bakery/internal/config"
	"bakery/internal/domain/model"
	repo "bakery/internal/repository"
	"bakery/internal/usecase"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Run は初期データを投入する。既にあるものは触らない。
func Run(ctx context.Context, cfg config.Config, users repo.UserRepository, menu repo.MenuItemRepository, content repo.ContentRepository) error {
	if err := seedAdmin(ctx, cfg, users); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedMenu(ctx, menu); err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	if err := seedContent(ctx, content); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, cfg config.Config, users repo.UserRepository) error {
	_, err := users.FindByUsername(ctx, "admin")
	if err == nil {
		return nil // もういる
	}
	if err != repo.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return users.Create(ctx, &model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		Name:         "Admin",
	})
}

func seedMenu(ctx context.Context, menu repo.MenuItemRepository) error {
	n, err := menu.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, item := range defaultMenu() {
		if _, err := menu.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func seedContent(ctx context.Context, content repo.ContentRepository) error {
	_, err := content.Get(ctx)
	if err == nil {
		return nil
	}
	if err != repo.ErrNotFound {
		return err
	}
	return content.Save(ctx, usecase.DefaultSiteContent())
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// 開店時の定番メニュー。
func defaultMenu() []model.MenuItem {
	return []model.MenuItem{
		{Name: "Classic Vanilla Cake", Description: "Light vanilla sponge layered with whipped cream.", Price: price("550.00"), Category: model.CategoryCakes, IsVeg: true},
		{Name: "Chocolate Truffle Cake", Description: "Rich dark chocolate ganache over moist chocolate sponge.", Price: price("650.00"), Category: model.CategoryCakes, IsVeg: true},
		{Name: "Red Velvet Cake", Description: "Cream cheese frosting on classic red velvet layers.", Price: price("700.00"), Category: model.CategoryCakes, IsVeg: true},
		{Name: "Belgian Chocolate Overload", Description: "Triple layer Belgian chocolate with chocolate shards.", Price: price("950.00"), Category: model.CategoryDecadentCakes, IsVeg: true},
		{Name: "Biscoff Cheesecake", Description: "Baked cheesecake with a Lotus Biscoff crumb and drizzle.", Price: price("850.00"), Category: model.CategoryDecadentCakes, IsVeg: true},
		{Name: "Butter Croissant", Description: "Flaky, all-butter, baked every morning.", Price: price("90.00"), Category: model.CategoryPastries, IsVeg: true},
		{Name: "Pain au Chocolat", Description: "Croissant dough with dark chocolate batons.", Price: price("110.00"), Category: model.CategoryPastries, IsVeg: true},
		{Name: "Blueberry Danish", Description: "Custard and blueberry compote in laminated pastry.", Price: price("120.00"), Category: model.CategoryPastries, IsVeg: true},
		{Name: "Sourdough Loaf", Description: "Naturally leavened, 24 hour fermentation.", Price: price("180.00"), Category: model.CategoryBreads, IsVeg: true},
		{Name: "Garlic Herb Focaccia", Description: "Olive oil focaccia with roasted garlic and rosemary.", Price: price("160.00"), Category: model.CategoryBreads, IsVeg: true},
		{Name: "Paneer Tikka Skewers", Description: "Char-grilled cottage cheese with mint chutney.", Price: price("240.00"), Category: model.CategoryAppetizers, IsVeg: true},
		{Name: "Peri Peri Fries", Description: "Crispy fries tossed in peri peri spice.", Price: price("150.00"), Category: model.CategoryAppetizers, IsVeg: true},
		{Name: "Grilled Cottage Cheese Steak", Description: "Served with mashed potato and pepper sauce.", Price: price("320.00"), Category: model.CategoryMainCourse, IsVeg: true},
		{Name: "Alfredo Pasta", Description: "Fettuccine in creamy parmesan sauce.", Price: price("280.00"), Category: model.CategoryPasta, IsVeg: true},
		{Name: "Arrabbiata Pasta", Description: "Penne in spicy tomato and basil sauce.", Price: price("260.00"), Category: model.CategoryPasta, IsVeg: true},
		{Name: "Margherita Pizza", Description: "San Marzano tomato, mozzarella, fresh basil.", Price: price("300.00"), Category: model.CategoryPizza, IsVeg: true},
		{Name: "Farmhouse Pizza", Description: "Onion, capsicum, mushroom, sweet corn.", Price: price("350.00"), Category: model.CategoryPizza, IsVeg: true},
		{Name: "Classic Veg Burger", Description: "Crispy veg patty, house sauce, brioche bun.", Price: price("190.00"), Category: model.CategoryBurgers, IsVeg: true},
		{Name: "Caesar Salad", Description: "Romaine, parmesan, garlic croutons.", Price: price("220.00"), Category: model.CategorySalads, IsVeg: true},
		{Name: "Paneer Tikka Rice Bowl", Description: "Jeera rice topped with paneer tikka and salad.", Price: price("260.00"), Category: model.CategoryRiceBowls, IsVeg: true},
		{Name: "Mini Pancakes", Description: "With maple syrup and chocolate chips.", Price: price("140.00"), Category: model.CategoryKidsMenu, IsVeg: true},
		{Name: "Cheese Garlic Bread", Description: "Kid-size portion with extra cheese.", Price: price("120.00"), Category: model.CategoryKidsMenu, IsVeg: true},
		{Name: "Cappuccino", Description: "Double shot with steamed milk.", Price: price("130.00"), Category: model.CategoryBeverages, IsVeg: true},
		{Name: "Cold Coffee", Description: "Blended iced coffee with cream.", Price: price("160.00"), Category: model.CategoryBeverages, IsVeg: true},
		{Name: "Fresh Lime Soda", Description: "Sweet or salted.", Price: price("90.00"), Category: model.CategoryBeverages, IsVeg: true},
		{Name: "Mango Mousse Cake", Description: "Seasonal alphonso mango mousse on vanilla sponge.", Price: price("750.00"), Category: model.CategoryCakes, IsVeg: true, IsSeasonal: true},
	}
}
