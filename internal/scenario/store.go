package scenario

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Record — одна строка таблицы сценария
type Record struct {
	ID        string    `json:"id"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Data      Row       `json:"data"`
}

// Row — данные строки; у vtypes набор ключей открытый
type Row map[string]any

// SimSettings — единственная запись с параметрами прогона
type SimSettings struct {
	Begin             int     `json:"begin"`
	End               int     `json:"end"`
	StepLength        float64 `json:"stepLength"`
	RandomSeed        int     `json:"randomSeed"`
	LaneChangeModel   string  `json:"laneChangeModel"`
	LateralResolution float64 `json:"lateralResolution"`
	TimeToTeleport    int     `json:"timeToTeleport"`
	CollisionAction   string  `json:"collisionAction"`
}

// OutputToggle — один переключатель вывода симулятора.
// Freq == nil означает, что у этого вида вывода частоты нет (tripinfo).
type OutputToggle struct {
	Enabled bool   `json:"enabled"`
	File    string `json:"file"`
	Freq    *int   `json:"freq,omitempty"`
}

// Виды выводов в порядке секции <output> конфигурации
var OutputKinds = []string{"tripinfo", "fcd", "emissions", "summary", "edgedata", "lanedata"}

type OutputSet map[string]OutputToggle

// Project — имя проекта, имена файлов и сторона движения
type Project struct {
	Name           string `json:"name"`
	DrivingSide    string `json:"drivingSide"` // right | left
	NetFile        string `json:"netFile"`
	RouteFile      string `json:"routeFile"`
	AdditionalFile string `json:"additionalFile"`
	ConfigFile     string `json:"configFile"`
}

// Snapshot — неизменяемый срез состояния для одного прохода генерации
type Snapshot struct {
	Tables  map[string][]Row
	Sim     SimSettings
	Outputs OutputSet
	Project Project
}

// Store — состояние сессии редактирования. Живёт только в памяти:
// создаётся с дефолтами на старте и умирает вместе с процессом.
type Store struct {
	mu      sync.RWMutex
	tables  map[string][]*Record // порядок строк = порядок вставки
	sim     SimSettings
	outputs OutputSet
	project Project
	entropy io.Reader
}

// NewStore создаёт хранилище, засеянное дефолтными таблицами
func NewStore(project Project) *Store {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Store{
		tables:  make(map[string][]*Record),
		sim:     defaultSim,
		outputs: defaultOutputs(),
		project: project,
		entropy: ulid.Monotonic(src, 0),
	}
	for name, rows := range defaultRows() {
		for _, row := range rows {
			s.append(name, row)
		}
	}
	return s
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// append — добавление без блокировки, для NewStore и Add
func (s *Store) append(table string, data Row) *Record {
	now := time.Now().UTC()
	rec := &Record{
		ID:        s.newID(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
		Data:      data,
	}
	s.tables[table] = append(s.tables[table], rec)
	return rec
}

// List возвращает строки таблицы в порядке вставки
func (s *Store) List(table string) []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Record, len(s.tables[table]))
	copy(out, s.tables[table])
	return out
}

// Get возвращает строку по id
func (s *Store) Get(table, id string) (*Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.tables[table] {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// Add добавляет строку и возвращает её
func (s *Store) Add(table string, data Row) *Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.append(table, data)
}

// Replace целиком заменяет данные строки
func (s *Store) Replace(table, id string, data Row) (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.tables[table] {
		if rec.ID == id {
			rec.Data = data
			rec.Version++
			rec.UpdatedAt = time.Now().UTC()
			return rec, true
		}
	}
	return nil, false
}

// Patch изменяет только присланные поля строки
func (s *Store) Patch(table, id string, patch Row) (*Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.tables[table] {
		if rec.ID == id {
			if rec.Data == nil {
				rec.Data = make(Row, len(patch))
			}
			for k, v := range patch {
				rec.Data[k] = v
			}
			rec.Version++
			rec.UpdatedAt = time.Now().UTC()
			return rec, true
		}
	}
	return nil, false
}

// Delete удаляет строку
func (s *Store) Delete(table, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.tables[table]
	for i, rec := range rows {
		if rec.ID == id {
			s.tables[table] = append(rows[:i:i], rows[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceAll заменяет таблицу целиком (сабмит всей формы разом)
func (s *Store) ReplaceAll(table string, rows []Row) []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = nil
	out := make([]*Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.append(table, row))
	}
	return out
}

func (s *Store) Sim() SimSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sim
}

func (s *Store) SetSim(sim SimSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sim = sim
}

func (s *Store) Outputs() OutputSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyOutputs(s.outputs)
}

func (s *Store) SetOutputs(out OutputSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs = copyOutputs(out)
}

func (s *Store) Project() Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project
}

func (s *Store) SetProject(p Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = p
}

// Snapshot делает глубокую копию состояния: генераторы работают c ней
// и не видят параллельных правок (хотя писатель в сессии один)
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sn := Snapshot{
		Tables:  make(map[string][]Row, len(s.tables)),
		Sim:     s.sim,
		Outputs: copyOutputs(s.outputs),
		Project: s.project,
	}
	for name, recs := range s.tables {
		rows := make([]Row, 0, len(recs))
		for _, rec := range recs {
			row := make(Row, len(rec.Data))
			for k, v := range rec.Data {
				row[k] = v
			}
			rows = append(rows, row)
		}
		sn.Tables[name] = rows
	}
	return sn
}

func copyOutputs(in OutputSet) OutputSet {
	out := make(OutputSet, len(in))
	for k, v := range in {
		if v.Freq != nil {
			f := *v.Freq
			v.Freq = &f
		}
		out[k] = v
	}
	return out
}
