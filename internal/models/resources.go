package models

// Brand is a server-owned record. The client holds only transient copies;
// the last successful fetch wins.
type Brand struct {
	BrandID     int64  `json:"brandId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Category is a server-owned lookup record used by blind-box forms.
type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// BlindBox is a server-owned record. List responses carry resolved category
// and brand names; create/update payloads carry the ids instead.
type BlindBox struct {
	BlindBoxID   int64   `json:"blindBoxId"`
	Name         string  `json:"name"`
	CategoryName string  `json:"categoryName"`
	BrandName    string  `json:"brandName"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ReleaseDate  string  `json:"releaseDate"`
}

// BrandInput is the create/update payload for brands.
type BrandInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// BlindBoxInput is the create/update payload for blind boxes.
type BlindBoxInput struct {
	Name        string  `json:"name"`
	CategoryID  int64   `json:"categoryId"`
	BrandID     int64   `json:"brandId"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ReleaseDate string  `json:"releaseDate"`
}
