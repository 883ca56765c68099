package migration

import (
	"embed"
	"fmt"

	"gorm.io/gorm"
)

// Scripts holds the versioned SQL migrations, one directory per tool and
// dialect: scripts/<goose|migrate>/<mysql|postgres|sqlite>.
//
//go:embed scripts
var Scripts embed.FS

// dialectDir maps the gorm dialector to the scripts subdirectory.
func dialectDir(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "mysql", "postgres", "sqlite":
		return name, nil
	default:
		return "", fmt.Errorf("no migration scripts for dialect %q", name)
	}
}
