package model

// CMSで編集するサイト文言。セクションごとに型を固定する
// （編集フォーム側の緩いネストオブジェクトをそのまま受けない）。

type HeroContent struct {
	Title    string `json:"title"`
	Accent   string `json:"accent"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

type AboutContent struct {
	Title        string `json:"title"`
	FounderName  string `json:"founder_name"`
	FounderBio   string `json:"founder_bio"`
	FounderImage string `json:"founder_image"`
}

type ContactContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// 会社情報。住所や電話は管理画面から差し替えられる。
type CompanyInfo struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
}

type SiteContent struct {
	Hero    HeroContent    `json:"hero"`
	About   AboutContent   `json:"about"`
	Contact ContactContent `json:"contact"`
	Company CompanyInfo    `json:"company"`
}
