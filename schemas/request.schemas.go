package schemas

// Mutable field sets accepted by PUT and PATCH
var (
	ArtMutableFields     = []string{"A_Title", "A_Image", "A_Is_Public", "A_Comments"}
	GalleryMutableFields = []string{"G_Name", "G_Is_Public", "G_Comments"}
	UserMutableFields    = []string{"U_Name", "U_Profile", "Pixel_Amount", "Time_Length", "Is_Custom_Time", "Custom_Time_Alarm"}
)

// Fields that PUT and PATCH must never carry
var (
	ArtImmutableFields     = []string{"User", "Galleries", "A_ID", "self"}
	GalleryImmutableFields = []string{"User", "Arts", "G_ID", "self"}
	UserImmutableFields    = []string{"U_ID", "self", "Arts", "Galleries", "U_Friends", "U_Auth_Sub"}
)

// CreatorSchema struct (creator reference in create bodies)
type CreatorSchema struct {
	ID *int64 `json:"U_ID" validate:"required"`
}

// UserInfoSchema struct (identity claims trusted as supplied)
type UserInfoSchema struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Sub     string `json:"sub"`
	Picture string `json:"picture"`
}

// CreateUserSchema struct
type CreateUserSchema struct {
	UserInfo *UserInfoSchema `json:"userinfo" validate:"required"`
}

// UserFieldsSchema struct (PUT/PATCH /users/:id)
type UserFieldsSchema struct {
	Name            *string `json:"U_Name"`
	Profile         *string `json:"U_Profile"`
	PixelAmount     *int    `json:"Pixel_Amount" validate:"omitempty,gte=1"`
	TimeLength      *int    `json:"Time_Length" validate:"omitempty,gte=1"`
	IsCustomTime    *bool   `json:"Is_Custom_Time"`
	CustomTimeAlarm *string `json:"Custom_Time_Alarm" validate:"omitempty,gmttime"`
}

// RefreshSchema struct (PATCH /users)
type RefreshSchema struct {
	RequestMethod string `json:"request_method"`
}

// CreateArtSchema struct
type CreateArtSchema struct {
	User     *CreatorSchema `json:"User" validate:"required"`
	Image    *string        `json:"A_Image"`
	Title    *string        `json:"A_Title"`
	Comments []interface{}  `json:"A_Comments"`
	Previous interface{}    `json:"A_Previous"`
	IsPublic *bool          `json:"A_Is_Public"`
}

// ArtFieldsSchema struct (PUT/PATCH /arts/:id)
type ArtFieldsSchema struct {
	Title    string        `json:"A_Title"`
	Image    string        `json:"A_Image"`
	IsPublic bool          `json:"A_Is_Public"`
	Comments []interface{} `json:"A_Comments"`
}

// CreateGallerySchema struct
type CreateGallerySchema struct {
	User     *CreatorSchema `json:"User" validate:"required"`
	Name     *string        `json:"G_Name"`
	Comments []interface{}  `json:"G_Comments"`
	Profile  *string        `json:"G_Profile"`
	IsPublic *bool          `json:"G_Is_Public"`
}

// GalleryFieldsSchema struct (PUT/PATCH /galleries/:id)
type GalleryFieldsSchema struct {
	Name     string        `json:"G_Name"`
	IsPublic bool          `json:"G_Is_Public"`
	Comments []interface{} `json:"G_Comments"`
}
