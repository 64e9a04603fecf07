package models

import "time"

// CustomFormThumbnail is the reference image attached to a request. The
// console reads the nested image_url key.
type CustomFormThumbnail struct {
	ImageURL string `gorm:"size:500;column:thumbnail_image_url" json:"image_url"`
}

// CustomForm is a customer's request for a made-to-order idol. It is
// submitted from the storefront and reviewed in the admin console; contact
// details come from the associated user.
type CustomForm struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	UserID         uint                `gorm:"index" json:"userId"`
	User           *User               `json:"user,omitempty"`
	Suggestion     string              `gorm:"size:2000" json:"suggestion"`
	Size           float64             `json:"size"`
	Specifications string              `gorm:"size:2000" json:"otherSpecifications"`
	Thumbnail      CustomFormThumbnail `gorm:"embedded" json:"thumbnail"`
	Status         CustomFormStatus    `gorm:"size:50" json:"status"`
	CreatedAt      time.Time           `json:"createdDate"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}
