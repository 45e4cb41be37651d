package models

// Movie - запись статического каталога (только чтение).
type Movie struct {
	ID           MovieID `json:"id"`
	Title        string  `json:"titulo"`
	Year         string  `json:"ano"`
	Director     string  `json:"diretor"`
	Country      string  `json:"pais,omitempty"`
	Genre        string  `json:"genero,omitempty"`
	Description  string  `json:"descricao,omitempty"`
	Details      string  `json:"detalhes,omitempty"`
	CoverSeconds float64 `json:"capaSeconds,omitempty"`
}

// CollectionType - вид подборки.
type CollectionType string

const (
	CollectionStudio   CollectionType = "studio"
	CollectionDirector CollectionType = "director"
	CollectionOther    CollectionType = "other"
)

// RewardID - идентификатор награды (номер аватара и т.п.).
type RewardID = string

// Level - уровень подборки: порог просмотров и награды за него.
type Level struct {
	Required int        `json:"required"`
	Rewards  []RewardID `json:"rewards"`
}

// Collection - курируемая подборка фильмов с уровнями наград.
type Collection struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Desc      string         `json:"desc,omitempty"`
	Type      CollectionType `json:"type"`
	AllMovies []MovieID      `json:"allMovies"`
	Levels    []Level        `json:"levels"`
}
