package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/cubesphere/internal/sketch"
)

// ErrEmptyCapture is returned when saving a capture with no frames.
var ErrEmptyCapture = errors.New("storage: capture has no frames")

// Columns of trace.csv, one row per frame.
var traceHeader = []string{"frame", "phase", "spin", "base_hue", "cube_size", "hue", "saturation", "brightness"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type CaptureMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Scheme    string    `json:"scheme"`
	CubeSize  float64   `json:"cube_size"`
	Radius    float64   `json:"radius"`
	PhaseStep float64   `json:"phase_step"`
	Frames    int       `json:"frames"`
	Filled    int       `json:"filled"`
}

// Sample is one row of a capture trace. Hue, Saturation and Brightness are
// the color of cell (0,0).
type Sample struct {
	Frame      int
	Phase      float64
	Spin       float64
	BaseHue    float64
	CubeSize   float64
	Hue        float64
	Saturation float64
	Brightness float64
}

func (s Sample) values() []float64 {
	return []float64{float64(s.Frame), s.Phase, s.Spin, s.BaseHue, s.CubeSize, s.Hue, s.Saturation, s.Brightness}
}

// SampleFrame reduces a frame to its trace row.
func SampleFrame(f sketch.Frame) Sample {
	s := Sample{
		Frame:    f.Index,
		Phase:    f.State.Phase,
		Spin:     f.Spin,
		BaseHue:  f.State.BaseHue,
		CubeSize: f.State.CubeSize,
	}
	if len(f.Cubes) > 0 {
		c := f.Cubes[0].Color
		s.Hue, s.Saturation, s.Brightness = c.H, c.S, c.B
	}
	return s
}

// Save writes metadata.json and trace.csv for frames into a new capture
// directory and returns its id.
func (s *Store) Save(seed int64, frames []sketch.Frame) (string, error) {
	if len(frames) == 0 {
		return "", ErrEmptyCapture
	}
	now := time.Now()
	first := frames[0]
	id := fmt.Sprintf("%s_%d", first.State.Scheme, now.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := CaptureMetadata{
		ID:        id,
		Timestamp: now,
		Seed:      seed,
		Scheme:    first.State.Scheme.String(),
		CubeSize:  first.State.CubeSize,
		Radius:    first.Params.Radius,
		PhaseStep: first.Params.PhaseStep,
		Frames:    len(frames),
		Filled:    first.FilledCount(),
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(traceHeader); err != nil {
		return "", err
	}
	for _, f := range frames {
		vals := SampleFrame(f).values()
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return id, nil
}

// List returns the stored captures, oldest first.
func (s *Store) List() ([]CaptureMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []CaptureMetadata{}, nil
		}
		return nil, err
	}

	captures := make([]CaptureMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		captures = append(captures, *meta)
	}
	sort.Slice(captures, func(i, j int) bool {
		return captures[i].Timestamp.Before(captures[j].Timestamp)
	})

	return captures, nil
}

func (s *Store) Load(id string) (*CaptureMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta CaptureMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadTrace reads back the per-frame samples of a capture.
func (s *Store) LoadTrace(id string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "trace.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(traceHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("trace row %d, %s: %w", i+1, traceHeader[j], err)
			}
			vals[j] = v
		}
		samples = append(samples, Sample{
			Frame:      int(vals[0]),
			Phase:      vals[1],
			Spin:       vals[2],
			BaseHue:    vals[3],
			CubeSize:   vals[4],
			Hue:        vals[5],
			Saturation: vals[6],
			Brightness: vals[7],
		})
	}

	return samples, nil
}

// Column extracts one traced quantity from samples.
func Column(samples []Sample, name string) ([]float64, error) {
	idx := -1
	for i, h := range traceHeader {
		if h == name {
			idx = i
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("unknown trace column %q", name)
	}
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.values()[idx]
	}
	return out, nil
}

// Columns lists the traced quantities.
func Columns() []string {
	return append([]string(nil), traceHeader...)
}
