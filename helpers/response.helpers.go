package helpers

import (
	"strconv"

	"BEARSTY_server/schemas"
)

// UserURL is the self link of a user
func UserURL(baseURL string, id int64) string {
	return baseURL + "/users/" + strconv.FormatInt(id, 10)
}

// ArtURL is the self link of an art
func ArtURL(baseURL string, id int64) string {
	return baseURL + "/arts/" + strconv.FormatInt(id, 10)
}

// GalleryURL is the self link of a gallery
func GalleryURL(baseURL string, id int64) string {
	return baseURL + "/galleries/" + strconv.FormatInt(id, 10)
}

// UserMini builds a user mini-ref
func UserMini(baseURL string, id int64) schemas.UserRef {
	return schemas.UserRef{ID: id, Self: UserURL(baseURL, id)}
}

// ArtMini builds an art mini-ref
func ArtMini(baseURL string, id int64) schemas.ArtRef {
	return schemas.ArtRef{ID: id, Self: ArtURL(baseURL, id)}
}

// GalleryMini builds a gallery mini-ref
func GalleryMini(baseURL string, id int64) schemas.GalleryRef {
	return schemas.GalleryRef{ID: id, Self: GalleryURL(baseURL, id)}
}

func artRefs(refs []schemas.ArtRef) []schemas.ArtRef {
	if refs == nil {
		return []schemas.ArtRef{}
	}
	return refs
}

func galleryRefs(refs []schemas.GalleryRef) []schemas.GalleryRef {
	if refs == nil {
		return []schemas.GalleryRef{}
	}
	return refs
}

func comments(list []interface{}) []interface{} {
	if list == nil {
		return []interface{}{}
	}
	return list
}

// UserToResponse renders a user; friend ids become mini-refs on baseURL
func UserToResponse(baseURL string, user *schemas.User) schemas.UserResponse {
	friends := make([]schemas.UserRef, len(user.Friends))
	for i, id := range user.Friends {
		friends[i] = UserMini(baseURL, id)
	}

	return schemas.UserResponse{
		ID:              user.ID,
		Name:            user.Name,
		AuthSub:         user.AuthSub,
		Profile:         user.Profile,
		Arts:            artRefs(user.Arts),
		Galleries:       galleryRefs(user.Galleries),
		Friends:         friends,
		PixelAmount:     user.PixelAmount,
		TimeLength:      user.TimeLength,
		IsCustomTime:    user.IsCustomTime,
		CustomTimeAlarm: user.CustomTimeAlarm,
		TodayTime:       user.TodayTime,
		Self:            UserURL(baseURL, user.ID),
	}
}

// ArtToResponse renders an art
func ArtToResponse(baseURL string, art *schemas.Art) schemas.ArtResponse {
	return schemas.ArtResponse{
		ID:           art.ID,
		Image:        art.Image,
		Title:        art.Title,
		Comments:     comments(art.Comments),
		ModifiedDate: art.ModifiedDate,
		Previous:     art.Previous,
		IsPublic:     art.IsPublic,
		User:         art.User,
		Galleries:    galleryRefs(art.Galleries),
		Self:         ArtURL(baseURL, art.ID),
	}
}

// GalleryToResponse renders a gallery
func GalleryToResponse(baseURL string, gallery *schemas.Gallery) schemas.GalleryResponse {
	return schemas.GalleryResponse{
		ID:           gallery.ID,
		Arts:         artRefs(gallery.Arts),
		User:         gallery.User,
		Name:         gallery.Name,
		CreationDate: gallery.CreationDate,
		Comments:     comments(gallery.Comments),
		Profile:      gallery.Profile,
		IsPublic:     gallery.IsPublic,
		Self:         GalleryURL(baseURL, gallery.ID),
	}
}

// UsersToMinis renders a user listing
func UsersToMinis(baseURL string, users []*schemas.User) schemas.UsersResponse {
	refs := make([]schemas.UserRef, len(users))
	for i, user := range users {
		refs[i] = UserMini(baseURL, user.ID)
	}
	return schemas.UsersResponse{Users: refs}
}

// ArtsToMinis renders an art listing
func ArtsToMinis(baseURL string, arts []*schemas.Art) schemas.ArtsResponse {
	refs := make([]schemas.ArtRef, len(arts))
	for i, art := range arts {
		refs[i] = ArtMini(baseURL, art.ID)
	}
	return schemas.ArtsResponse{Arts: refs}
}

// GalleriesToMinis renders a gallery listing
func GalleriesToMinis(baseURL string, galleries []*schemas.Gallery) schemas.GalleriesResponse {
	refs := make([]schemas.GalleryRef, len(galleries))
	for i, gallery := range galleries {
		refs[i] = GalleryMini(baseURL, gallery.ID)
	}
	return schemas.GalleriesResponse{Galleries: refs}
}

// ArtGalleriesResponse lists the gallery mini-refs stored on an art
func ArtGalleriesResponse(art *schemas.Art) schemas.GalleriesResponse {
	return schemas.GalleriesResponse{Galleries: galleryRefs(art.Galleries)}
}

// GalleryArtsResponse lists the art mini-refs stored on a gallery
func GalleryArtsResponse(gallery *schemas.Gallery) schemas.ArtsResponse {
	return schemas.ArtsResponse{Arts: artRefs(gallery.Arts)}
}
