package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Document is the exported form of one generated trace.
type Document struct {
	ID        string             `json:"id"`
	Algorithm sorting.Algorithm  `json:"algorithm"`
	Generated time.Time          `json:"generated"`
	Input     []int              `json:"input"`
	Stats     sorting.Stats      `json:"stats"`
	Steps     int                `json:"steps"`
	Trace     []sorting.Snapshot `json:"trace"`
}

func NewDocument(alg sorting.Algorithm, input []int, trace sorting.Trace, stats sorting.Stats) *Document {
	return &Document{
		ID:        fmt.Sprintf("%s_%s", alg, uuid.NewString()[:8]),
		Algorithm: alg,
		Generated: time.Now().UTC(),
		Input:     append([]int(nil), input...),
		Stats:     stats,
		Steps:     len(trace),
		Trace:     trace,
	}
}

// WriteJSON encodes doc as indented JSON.
func WriteJSON(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteCSV writes one row per snapshot: step, op, description, the
// highlighted indices and the array values.
func WriteCSV(w io.Writer, trace sorting.Trace) error {
	cw := csv.NewWriter(w)

	width := 0
	if len(trace) > 0 {
		width = len(trace[0].Array)
	}
	header := []string{"step", "op", "description", "comparing", "swapped"}
	for i := 0; i < width; i++ {
		header = append(header, fmt.Sprintf("a%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, snap := range trace {
		row := []string{
			strconv.Itoa(i),
			snap.Op.String(),
			snap.Description,
			joinInts(snap.Comparing),
			joinInts(snap.Swapped),
		}
		for _, v := range snap.Array {
			row = append(row, strconv.Itoa(v))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
