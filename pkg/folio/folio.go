// Package folio generates human-readable unique codes like ORD-LX2K3F-9A1C.
package folio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func New(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("%s-%s-%s", prefix, ts, suffix)
}
