package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pribylovaa/sort-a-short/internal/models"
)

// Справочники редактируются руками, поэтому числа иногда приходят строками
// и наоборот ("ano": 1999, "rewards": [7, "8"]).

type movieDTO struct {
	Title        string     `json:"titulo"`
	Year         flexString `json:"ano"`
	Director     string     `json:"diretor"`
	Country      string     `json:"pais"`
	Genre        string     `json:"genero"`
	Description  string     `json:"descricao"`
	Details      string     `json:"detalhes"`
	CoverSeconds flexFloat  `json:"capaSeconds"`
}

type levelDTO struct {
	Required flexFloat    `json:"required"`
	Rewards  []flexString `json:"rewards"`
}

type collectionDTO struct {
	Title     string     `json:"title"`
	Desc      string     `json:"desc"`
	Type      string     `json:"type"`
	AllMovies []string   `json:"allMovies"`
	Levels    []levelDTO `json:"levels"`
}

// DecodeMovies разбирает shorts.json.
func DecodeMovies(data []byte) (map[models.MovieID]models.Movie, error) {
	const op = "catalog/DecodeMovies"

	var raw map[string]movieDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[models.MovieID]models.Movie, len(raw))
	for id, m := range raw {
		if strings.TrimSpace(id) == "" {
			continue
		}
		out[id] = models.Movie{
			ID:           id,
			Title:        m.Title,
			Year:         string(m.Year),
			Director:     m.Director,
			Country:      m.Country,
			Genre:        m.Genre,
			Description:  m.Description,
			Details:      m.Details,
			CoverSeconds: float64(m.CoverSeconds),
		}
	}

	return out, nil
}

// DecodeCollections разбирает collections.json. Неизвестный type -> "other".
func DecodeCollections(data []byte) (map[string]models.Collection, error) {
	const op = "catalog/DecodeCollections"

	var raw map[string]collectionDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]models.Collection, len(raw))
	for id, c := range raw {
		col := models.Collection{
			ID:        id,
			Title:     c.Title,
			Desc:      c.Desc,
			Type:      collectionType(c.Type),
			AllMovies: append([]models.MovieID{}, c.AllMovies...),
			Levels:    make([]models.Level, 0, len(c.Levels)),
		}

		for _, l := range c.Levels {
			lvl := models.Level{Required: int(l.Required), Rewards: make([]models.RewardID, 0, len(l.Rewards))}
			for _, r := range l.Rewards {
				lvl.Rewards = append(lvl.Rewards, string(r))
			}
			col.Levels = append(col.Levels, lvl)
		}

		out[id] = col
	}

	return out, nil
}

func collectionType(s string) models.CollectionType {
	switch t := models.CollectionType(strings.ToLower(strings.TrimSpace(s))); t {
	case models.CollectionStudio, models.CollectionDirector:
		return t
	default:
		return models.CollectionOther
	}
}

// flexString - строка или число.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flexString: %w", err)
	}
	*s = flexString(n.String())

	return nil
}

// flexFloat - число или числовая строка.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		*f = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		if strings.TrimSpace(v) == "" {
			*f = 0
			return nil
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("flexFloat: %w", err)
		}
		*f = flexFloat(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flexFloat: %w", err)
	}
	*f = flexFloat(n)

	return nil
}
