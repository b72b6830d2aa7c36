package booking

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Genres is stored as a single delimited string column so the same
// model works on postgres and the sqlite test driver.
type Genres []string

const genresSep = ";"

func (g Genres) Value() (driver.Value, error) {
	if len(g) == 0 {
		return "", nil
	}
	return strings.Join(g, genresSep), nil
}

func (g *Genres) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*g = nil
		return nil
	case string:
		*g = split(v)
		return nil
	case []byte:
		*g = split(string(v))
		return nil
	default:
		return fmt.Errorf("genres: cannot scan %T", value)
	}
}

func split(s string) Genres {
	if s == "" {
		return nil
	}
	return Genres(strings.Split(s, genresSep))
}

func (Genres) GormDataType() string {
	return "text"
}
