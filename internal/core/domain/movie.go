package domain

// Movie is a catalog entry. AddedBy references the creating user; once set,
// only that user may update or delete the movie. Movies created before
// ownership existed have an empty AddedBy and cannot be mutated by anyone.
type Movie struct {
	ID      string   `json:"id" bson:"_id,omitempty"`
	Name    string   `json:"name" bson:"name"`
	Casts   []string `json:"casts" bson:"casts"`
	Genres  []string `json:"genres" bson:"genres"`
	AddedBy string   `json:"added_by,omitempty" bson:"added_by,omitempty"`
}
