package file

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// UniqueName generates a collision-resistant filename for stored media,
// keeping only the extension from the user-supplied name.
func UniqueName(originalName string) string {
	ext := filepath.Ext(originalName)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
}
