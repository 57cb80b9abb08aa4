package schemas

// Meta is the store-side identity of a document. It is never serialized.
type Meta struct {
	ID      int64 `json:"-"`
	Version int64 `json:"-"`
}

// Header exposes the embedded Meta of any document
func (m *Meta) Header() *Meta {
	return m
}

// UserRef struct (user mini-ref)
type UserRef struct {
	ID   int64  `json:"U_ID"`
	Self string `json:"self"`
}

// ArtRef struct (art mini-ref)
type ArtRef struct {
	ID   int64  `json:"A_ID"`
	Self string `json:"self"`
}

// GalleryRef struct (gallery mini-ref)
type GalleryRef struct {
	ID   int64  `json:"G_ID"`
	Self string `json:"self"`
}

// User is the stored user document
type User struct {
	Meta            `json:"-"`
	Name            string       `json:"U_Name"`
	AuthSub         string       `json:"U_Auth_Sub"`
	Profile         string       `json:"U_Profile"`
	Arts            []ArtRef     `json:"Arts"`
	Galleries       []GalleryRef `json:"Galleries"`
	Friends         []int64      `json:"U_Friends"`
	PixelAmount     int          `json:"Pixel_Amount"`
	TimeLength      int          `json:"Time_Length"`
	IsCustomTime    bool         `json:"Is_Custom_Time"`
	CustomTimeAlarm string       `json:"Custom_Time_Alarm"`
	TodayTime       string       `json:"Today_Time"`
}

// HasFriend reports whether id is in the friend list
func (u *User) HasFriend(id int64) bool {
	for _, friend := range u.Friends {
		if friend == id {
			return true
		}
	}
	return false
}

// AddFriend appends id unless it is already present or is the user's own id
func (u *User) AddFriend(id int64) {
	if id == u.ID || u.HasFriend(id) {
		return
	}
	u.Friends = append(u.Friends, id)
}

// RemoveFriend removes every occurrence of id
func (u *User) RemoveFriend(id int64) {
	friends := make([]int64, 0, len(u.Friends))
	for _, friend := range u.Friends {
		if friend != id {
			friends = append(friends, friend)
		}
	}
	u.Friends = friends
}

// Art is the stored art document
type Art struct {
	Meta         `json:"-"`
	Image        string        `json:"A_Image"`
	Title        string        `json:"A_Title"`
	Comments     []interface{} `json:"A_Comments"`
	ModifiedDate string        `json:"A_Modified_Date"`
	Previous     interface{}   `json:"A_Previous"`
	IsPublic     bool          `json:"A_Is_Public"`
	User         *UserRef      `json:"User"`
	Galleries    []GalleryRef  `json:"Galleries"`
}

// InGallery reports whether the art carries a mini-ref to the gallery
func (a *Art) InGallery(galleryID int64) bool {
	for _, ref := range a.Galleries {
		if ref.ID == galleryID {
			return true
		}
	}
	return false
}

// RemoveGallery drops every mini-ref to the gallery
func (a *Art) RemoveGallery(galleryID int64) {
	refs := make([]GalleryRef, 0, len(a.Galleries))
	for _, ref := range a.Galleries {
		if ref.ID != galleryID {
			refs = append(refs, ref)
		}
	}
	a.Galleries = refs
}

// Gallery is the stored gallery document
type Gallery struct {
	Meta         `json:"-"`
	Arts         []ArtRef      `json:"Arts"`
	User         *UserRef      `json:"User"`
	Name         string        `json:"G_Name"`
	CreationDate string        `json:"G_Creation_Date"`
	Comments     []interface{} `json:"G_Comments"`
	Profile      string        `json:"G_Profile"`
	IsPublic     bool          `json:"G_Is_Public"`
}

// HasArt reports whether the gallery carries a mini-ref to the art
func (g *Gallery) HasArt(artID int64) bool {
	for _, ref := range g.Arts {
		if ref.ID == artID {
			return true
		}
	}
	return false
}

// RemoveArt drops every mini-ref to the art
func (g *Gallery) RemoveArt(artID int64) {
	refs := make([]ArtRef, 0, len(g.Arts))
	for _, ref := range g.Arts {
		if ref.ID != artID {
			refs = append(refs, ref)
		}
	}
	g.Arts = refs
}
