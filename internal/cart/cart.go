package cart

import "github.com/shopspring/decimal"

// Line はカートの1明細。カタログから必要な項目だけを
// 切り取ったスナップショットで、生のMenuItem参照は持たない。
type Line struct {
	MenuItemID    int64           `json:"menu_item_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ImageURL      string          `json:"image_url,omitempty"`
	Quantity      int64           `json:"quantity"`
	Customization string          `json:"customization,omitempty"`
}

// Snapshot は通知・表示用のカートの写し。
type Snapshot struct {
	Lines    []Line          `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Observer はカート変更の同期通知を受ける。
type Observer func(Snapshot)

// Cart は1セッション分の買い物かご。明細のキーは
// (menu item id, customization) の組で、同じ商品でも
// カスタマイズが違えば別の行になる。
// 呼び出しは1クライアント1スレッド前提（ロックは持たない）。
type Cart struct {
	lines     []Line
	observers []Observer
}

func New() *Cart {
	return &Cart{}
}

// Add は明細を追加する。同じ (id, customization) の行が
// あれば数量を加算する。数量は必ず1以上に丸める。
func (c *Cart) Add(line Line) {
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == line.MenuItemID && c.lines[i].Customization == line.Customization {
			c.lines[i].Quantity += line.Quantity
			c.notify()
			return
		}
	}
	// 表示は挿入順なので末尾に足す
	c.lines = append(c.lines, line)
	c.notify()
}

// UpdateQuantity は行の数量を置き換える。0以下なら行を消す
// （数量0の行は残さない）。対象が無ければ何もしない。
func (c *Cart) UpdateQuantity(menuItemID int64, customization string, qty int64) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID && c.lines[i].Customization == customization {
			if qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = qty
			}
			c.notify()
			return
		}
	}
}

// Remove は (id, customization) で特定した1行を消す。
func (c *Cart) Remove(menuItemID int64, customization string) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID && c.lines[i].Customization == customization {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.notify()
			return
		}
	}
}

// RemoveItem は商品idに一致する行を全部消す。
func (c *Cart) RemoveItem(menuItemID int64) {
	kept := c.lines[:0]
	removed := false
	for _, l := range c.lines {
		if l.MenuItemID == menuItemID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	c.lines = kept
	if removed {
		c.notify()
	}
}

// Clear はカートを空にする。注文確定後に呼ぶ。何度呼んでも同じ。
func (c *Cart) Clear() {
	c.lines = nil
	c.notify()
}

// Subtotal は Σ(単価×数量)。副作用なし。
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return sum
}

// Lines は明細のコピーを挿入順で返す。
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Subscribe は変更通知の購読を登録する。通知は同期。
func (c *Cart) Subscribe(fn Observer) {
	c.observers = append(c.observers, fn)
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines(), Subtotal: c.Subtotal()}
}

func (c *Cart) notify() {
	if len(c.observers) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.observers {
		fn(snap)
	}
}
