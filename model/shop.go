package model

type Product struct {
	Id          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Price       float64  `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	ImageUrl    string   `json:"imageUrl" yaml:"imageUrl"`
	Sizes       []string `json:"sizes" yaml:"sizes"`
	Colors      []string `json:"colors" yaml:"colors"`
	InStock     bool     `json:"inStock" yaml:"inStock"`
}

type CartItem struct {
	CartId    string  `json:"cartId"`
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	UserId     string     `json:"userId"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

type CartAddition struct {
	ProductId string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}
