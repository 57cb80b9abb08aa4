package schemas

// UserResponse struct
type UserResponse struct {
	ID              int64        `json:"U_ID"`
	Name            string       `json:"U_Name"`
	AuthSub         string       `json:"U_Auth_Sub"`
	Profile         string       `json:"U_Profile"`
	Arts            []ArtRef     `json:"Arts"`
	Galleries       []GalleryRef `json:"Galleries"`
	Friends         []UserRef    `json:"U_Friends"`
	PixelAmount     int          `json:"Pixel_Amount"`
	TimeLength      int          `json:"Time_Length"`
	IsCustomTime    bool         `json:"Is_Custom_Time"`
	CustomTimeAlarm string       `json:"Custom_Time_Alarm"`
	TodayTime       string       `json:"Today_Time"`
	Self            string       `json:"self"`
}

// ArtResponse struct
type ArtResponse struct {
	ID           int64         `json:"A_ID"`
	Image        string        `json:"A_Image"`
	Title        string        `json:"A_Title"`
	Comments     []interface{} `json:"A_Comments"`
	ModifiedDate string        `json:"A_Modified_Date"`
	Previous     interface{}   `json:"A_Previous"`
	IsPublic     bool          `json:"A_Is_Public"`
	User         *UserRef      `json:"User"`
	Galleries    []GalleryRef  `json:"Galleries"`
	Self         string        `json:"self"`
}

// GalleryResponse struct
type GalleryResponse struct {
	ID           int64         `json:"G_ID"`
	Arts         []ArtRef      `json:"Arts"`
	User         *UserRef      `json:"User"`
	Name         string        `json:"G_Name"`
	CreationDate string        `json:"G_Creation_Date"`
	Comments     []interface{} `json:"G_Comments"`
	Profile      string        `json:"G_Profile"`
	IsPublic     bool          `json:"G_Is_Public"`
	Self         string        `json:"self"`
}

// UsersResponse struct
type UsersResponse struct {
	Users []UserRef
}

// ArtsResponse struct
type ArtsResponse struct {
	Arts []ArtRef
}

// GalleriesResponse struct
type GalleriesResponse struct {
	Galleries []GalleryRef
}
