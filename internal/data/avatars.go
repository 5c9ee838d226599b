package data

import "github.com/cristian-diego/cavaleiros-da-biblia/internal/models"

// Avatars is the selectable profile picture catalog.
var Avatars = []models.Avatar{
	{ID: "boy1", Name: "Daniel", Image: "https://images.pexels.com/photos/1462636/pexels-photo-1462636.jpeg?auto=compress&cs=tinysrgb&w=300"},
	{ID: "boy2", Name: "David", Image: "https://images.pexels.com/photos/1462637/pexels-photo-1462637.jpeg?auto=compress&cs=tinysrgb&w=300"},
	{ID: "girl1", Name: "Esther", Image: "https://images.pexels.com/photos/1462635/pexels-photo-1462635.jpeg?auto=compress&cs=tinysrgb&w=300"},
	{ID: "girl2", Name: "Ruth", Image: "https://images.pexels.com/photos/1462638/pexels-photo-1462638.jpeg?auto=compress&cs=tinysrgb&w=300"},
	{ID: "boy3", Name: "Joshua", Image: "https://images.pexels.com/photos/1462639/pexels-photo-1462639.jpeg?auto=compress&cs=tinysrgb&w=300"},
	{ID: "girl3", Name: "Mary", Image: "https://images.pexels.com/photos/1462640/pexels-photo-1462640.jpeg?auto=compress&cs=tinysrgb&w=300"},
}

// ValidAvatar reports whether the id is in the catalog.
func ValidAvatar(id string) bool {
	for _, a := range Avatars {
		if a.ID == id {
			return true
		}
	}
	return false
}
