package model

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"msaRecommender/business/reco"
	"msaRecommender/domain"
	"msaRecommender/pkg/logger"
)

// mineCoursePattern identifies in-house course ids when the catalog has
// no source column at all.
var mineCoursePattern = regexp.MustCompile(`^CR\d+`)

// Store owns the loaded model artifact and everything derived from it.
// All fields are built during Load and read-only afterwards; the zero
// Store answers IsLoaded() == false and the API runs degraded.
type Store struct {
	path      string
	startupAt time.Time

	loaded    bool
	users     *reco.IDMapping
	items     *reco.IDMapping
	predictor *FactorModel
	features  [][]float64
	mine      []int
	ratedBy   map[string]map[string]struct{}
	catalog   map[string]domain.Course
	courses   []domain.Course
	metadata  map[string]any
}

func NewStore(path string) *Store {
	return &Store{
		path:      path,
		startupAt: time.Now(),
	}
}

// Load reads the artifact and builds the identifier mappings, the
// predictor and the derived lookup tables.
func (s *Store) Load() error {
	artifact, err := ReadArtifact(s.path)
	if err != nil {
		return err
	}

	users, err := reco.NewIDMapping(artifact.UserMap)
	if err != nil {
		return fmt.Errorf("user mapping: %w", err)
	}
	items, err := reco.NewIDMapping(artifact.ItemMap)
	if err != nil {
		return fmt.Errorf("item mapping: %w", err)
	}

	s.users = users
	s.items = items
	s.predictor = &FactorModel{
		UserFactors:    artifact.UserFactors,
		ItemFactors:    artifact.ItemFactors,
		UserBiases:     artifact.UserBiases,
		ItemBiases:     artifact.ItemBiases,
		FeatureWeights: artifact.FeatureWeights,
	}
	s.features = artifact.ItemFeatures
	s.mine = dedupeIndices(artifact.MineIndices)
	s.metadata = artifact.Metadata
	s.setReviews(artifact.Reviews)
	s.setCatalog(artifact.Courses)
	s.loaded = true

	logger.Info("model loaded",
		"path", s.path,
		"users", users.Len(),
		"courses", items.Len(),
		"mine_courses", len(s.mine),
	)

	return nil
}

func (s *Store) IsLoaded() bool {
	return s.loaded
}

func (s *Store) StartupTime() time.Time {
	return s.startupAt
}

// Mappings returns the user and item bijections.
func (s *Store) Mappings() (*reco.IDMapping, *reco.IDMapping) {
	return s.users, s.items
}

func (s *Store) Predictor() reco.Predictor {
	return s.predictor
}

func (s *Store) Features() [][]float64 {
	return s.features
}

// MineIndices is the restricted subset for the mine-only policy, nil
// when the artifact ships none.
func (s *Store) MineIndices() []int {
	return s.mine
}

// RatedBy implements reco.RatedItemsSource over the review log, joined
// by the normalized user key.
func (s *Store) RatedBy(userKey string) map[string]struct{} {
	return s.ratedBy[userKey]
}

// Get implements reco.Catalog.
func (s *Store) Get(courseID string) (domain.Course, bool) {
	c, ok := s.catalog[courseID]
	return c, ok
}

// Info summarizes the loaded model for the status surface.
func (s *Store) Info() domain.ModelInfo {
	if !s.loaded {
		return domain.ModelInfo{}
	}
	return domain.ModelInfo{
		UserCount: s.users.Len(),
		ItemCount: s.items.Len(),
		MineCount: len(s.mine),
		Metadata:  s.metadata,
	}
}

// Users lists external user ids. Numeric-keyed models come back as
// integers in numeric order, string-keyed models as sorted strings.
func (s *Store) Users() []any {
	if !s.loaded {
		return []any{}
	}

	ids := s.users.ExternalIDs()
	if s.users.Kind() == reco.NumericKeyed {
		nums := make([]int64, 0, len(ids))
		for _, id := range ids {
			if f, err := strconv.ParseFloat(id, 64); err == nil {
				nums = append(nums, int64(f))
			}
		}
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })

		out := make([]any, len(nums))
		for i, n := range nums {
			out[i] = n
		}
		return out
	}

	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)

	out := make([]any, len(sorted))
	for i, id := range sorted {
		out[i] = id
	}
	return out
}

// Courses lists catalog rows, optionally filtered by source ("mine" or
// "udemy"). With no source column present the course-id pattern decides.
// Each row is a trimmed copy with the title fallback already applied.
func (s *Store) Courses(source string) []domain.Course {
	out := make([]domain.Course, 0, len(s.courses))

	for _, c := range s.courses {
		if source == "mine" || source == "udemy" {
			if !courseMatchesSource(c, source) {
				continue
			}
		}

		view := domain.Course{
			CourseID: c.CourseID,
			Title:    c.Title,
			Category: c.Category,
			Price:    c.Price,
			Level:    c.Level,
			Language: c.Language,
		}
		if view.Title == "" {
			view.Title = c.CourseTitle
		}

		out = append(out, view)
	}

	return out
}

func courseMatchesSource(c domain.Course, source string) bool {
	if c.Source != "" {
		return c.Source == source
	}
	if c.DataSource != "" {
		return c.DataSource == source
	}

	isMine := mineCoursePattern.MatchString(c.CourseID)
	if source == "mine" {
		return isMine
	}
	return !isMine
}

// OverlayCatalog replaces the artifact's embedded catalog with rows from
// the courses database. Called during startup, before serving begins.
func (s *Store) OverlayCatalog(courses []domain.Course) {
	s.setCatalog(courses)
}

// OverlayReviews likewise replaces the embedded review log.
func (s *Store) OverlayReviews(reviews []domain.Review) {
	s.setReviews(reviews)
}

func (s *Store) setCatalog(courses []domain.Course) {
	s.courses = courses
	s.catalog = make(map[string]domain.Course, len(courses))
	for _, c := range courses {
		s.catalog[c.CourseID] = c
	}
}

func (s *Store) setReviews(reviews []domain.Review) {
	s.ratedBy = make(map[string]map[string]struct{})
	for _, r := range reviews {
		set, ok := s.ratedBy[r.UserID]
		if !ok {
			set = make(map[string]struct{})
			s.ratedBy[r.UserID] = set
		}
		set[r.CourseID] = struct{}{}
	}
}

func dedupeIndices(idxs []int) []int {
	if idxs == nil {
		return nil
	}

	seen := make(map[int]struct{}, len(idxs))
	out := make([]int, 0, len(idxs))
	for _, idx := range idxs {
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}
