package usecase

import (
	"context"
	"net/http"
	"strings"

	"bakery/internal/domain/model"
	repo "bakery/internal/repository"
)

type ContentUsecase struct {
	contentRepo repo.ContentRepository
}

func NewContentUsecase(contentRepo repo.ContentRepository) *ContentUsecase {
	return &ContentUsecase{contentRepo: contentRepo}
}

// Get はサイト文言を返す。未設定でも落とさずデフォルトを返す。
func (u *ContentUsecase) Get(ctx context.Context) (model.SiteContent, error) {
	content, err := u.contentRepo.Get(ctx)
	if err == repo.ErrNotFound {
		return DefaultSiteContent(), nil
	}
	if err != nil {
		return model.SiteContent{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return content, nil
}

// AdminUpdate はセクション単位で検証してから丸ごと保存する。
// 編集フォームの緩いオブジェクトをそのまま受けない。
func (u *ContentUsecase) AdminUpdate(ctx context.Context, in model.SiteContent) (model.SiteContent, error) {
	if strings.TrimSpace(in.Hero.Title) == "" {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "hero title required")
	}
	if strings.TrimSpace(in.About.Title) == "" {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "about title required")
	}
	if strings.TrimSpace(in.Company.Name) == "" {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "company name required")
	}
	if strings.TrimSpace(in.Company.Phone) == "" {
		return model.SiteContent{}, NewHTTPError(http.StatusBadRequest, "company phone required")
	}

	if err := u.contentRepo.Save(ctx, in); err != nil {
		return model.SiteContent{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return in, nil
}

// 初期表示用の文言。seedでも使う。
func DefaultSiteContent() model.SiteContent {
	return model.SiteContent{
		Hero: model.HeroContent{
			Title:    "Crafted with Love,",
			Accent:   "Served with Joy",
			Subtitle: "Premium baked goods, custom cakes, and cafe favourites.",
			ImageURL: "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=1200",
		},
		About: model.AboutContent{
			Title:        "Our Story",
			FounderName:  "Mudra Khatri",
			FounderBio:   "A passionate baker and entrepreneur with a vision to bring gourmet baking closer to the community.",
			FounderImage: "",
		},
		Contact: model.ContactContent{
			Title:    "Get in Touch",
			Subtitle: "We would love to hear from you.",
		},
		Company: model.CompanyInfo{
			Name:      "Suss Sis Gourmet Bakery & Cafe",
			Tagline:   "Crafted with Love, Served with Joy",
			Address:   "No. 833/23, RTO Bypass Road, Singanayakanahalli, Yelahanka, Bengaluru, Karnataka 560064",
			Phone:     "+91 70193 02460",
			Email:     "susssis.info@gmail.com",
			Instagram: "@susssisbakery",
		},
	}
}
