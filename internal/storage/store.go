// Package storage persists completed runs under a base directory, one
// subdirectory per run holding metadata.json and observables.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/spinlab/internal/anneal"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMeta describes one stored run.
type RunMeta struct {
	ID                 string    `json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	Size               int       `json:"size"`
	States             int       `json:"states"`
	Field              float64   `json:"field"`
	Seed               uint64    `json:"seed"`
	Sweeps             int       `json:"sweeps"`
	AcceptRatio        float64   `json:"accept_ratio"`
	FinalEnergy        float64   `json:"final_energy"`
	FinalMagnetization float64   `json:"final_magnetization"`
	ElapsedSeconds     float64   `json:"elapsed_seconds"`
}

// Series holds the per-sweep columns of a stored run. The derived response
// columns are one entry shorter than the primaries.
type Series struct {
	Sweeps           []int     `json:"sweeps"`
	Temperatures     []float64 `json:"temperatures"`
	Energies         []float64 `json:"energies"`
	Magnetizations   []float64 `json:"magnetizations"`
	SpecificHeats    []float64 `json:"specific_heats"`
	Susceptibilities []float64 `json:"susceptibilities"`
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(size, states int, field float64, seed uint64, result *anneal.Result) (string, error) {
	runID := fmt.Sprintf("zn%d_L%d_%d", states, size, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMeta{
		ID:             runID,
		CreatedAt:      time.Now(),
		Size:           size,
		States:         states,
		Field:          field,
		Seed:           seed,
		Sweeps:         result.Sweeps,
		AcceptRatio:    result.AcceptRatio,
		ElapsedSeconds: result.Elapsed.Seconds(),
	}
	if n := len(result.Energies); n > 0 {
		meta.FinalEnergy = result.Energies[n-1]
		meta.FinalMagnetization = result.Magnetizations[n-1]
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "observables.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"sweep", "temperature", "energy", "magnetization", "specific_heat", "susceptibility"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Energies {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(result.Temperatures[i], 'f', 6, 64),
			strconv.FormatFloat(result.Energies[i], 'f', 6, 64),
			strconv.FormatFloat(result.Magnetizations[i], 'f', 0, 64),
		}
		// The responses are undefined for the first sweep; leave the
		// cells empty rather than writing zeros.
		if i == 0 {
			row = append(row, "", "")
		} else {
			row = append(row,
				strconv.FormatFloat(result.SpecificHeats[i-1], 'g', -1, 64),
				strconv.FormatFloat(result.Susceptibilities[i-1], 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns the metadata of every stored run, newest first.
func (s *Store) List() ([]RunMeta, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMeta{}, nil
		}
		return nil, err
	}

	runs := make([]RunMeta, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].CreatedAt.After(runs[j].CreatedAt) })

	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSeries reads one run's observable columns.
func (s *Store) LoadSeries(runID string) (*Series, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "observables.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	series := &Series{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		sweep, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		temp, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		energy, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		mag, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		series.Sweeps = append(series.Sweeps, sweep)
		series.Temperatures = append(series.Temperatures, temp)
		series.Energies = append(series.Energies, energy)
		series.Magnetizations = append(series.Magnetizations, mag)

		if len(record) >= 6 && record[4] != "" && record[5] != "" {
			heat, err := strconv.ParseFloat(record[4], 64)
			if err != nil {
				continue
			}
			susc, err := strconv.ParseFloat(record[5], 64)
			if err != nil {
				continue
			}
			series.SpecificHeats = append(series.SpecificHeats, heat)
			series.Susceptibilities = append(series.Susceptibilities, susc)
		}
	}

	return series, nil
}
