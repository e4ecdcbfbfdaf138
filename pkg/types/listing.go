package types

type UserId uint
type CategoryId uint
type ProductId uint

type User struct {
	Id     UserId `json:"id"`
	Name   string `json:"name"`
	Sex    string `json:"sex,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type Category struct {
	Id      CategoryId `json:"id"`
	Title   string     `json:"title"`
	Icon    string     `json:"icon,omitempty"`
	OwnerId UserId     `json:"ownerId"`
}

type Product struct {
	Id         ProductId  `json:"id"`
	Name       string     `json:"name"`
	CategoryId CategoryId `json:"categoryId"`
}

// EnrichedProduct is a product with its category and the category's owner
// resolved. Built from the immutable source collections, never mutated.
type EnrichedProduct struct {
	Product
	Category *Category `json:"category"`
	Owner    *User     `json:"owner"`
}

// ReferenceData holds the three source collections as loaded at startup.
type ReferenceData struct {
	Users      []User     `json:"users"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
}

func (d *ReferenceData) UserById(id UserId) (*User, bool) {
	for i := range d.Users {
		if d.Users[i].Id == id {
			return &d.Users[i], true
		}
	}
	return nil, false
}

func (d *ReferenceData) CategoryById(id CategoryId) (*Category, bool) {
	for i := range d.Categories {
		if d.Categories[i].Id == id {
			return &d.Categories[i], true
		}
	}
	return nil, false
}
