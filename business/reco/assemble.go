package reco

import "msaRecommender/domain"

// Catalog looks up course metadata by external course id.
type Catalog interface {
	Get(courseID string) (domain.Course, bool)
}

// assemble joins ranked candidates with catalog metadata. A course with
// no catalog row is still emitted, carrying only id and scores; present
// metadata fields are copied across, with the title falling back through
// the alternate column and finally a synthesized placeholder.
func assemble(ranked []ScoredCandidate, items *IDMapping, catalog Catalog) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(ranked))

	for _, sc := range ranked {
		id, ok := items.ToExternal(sc.ItemIdx)
		if !ok {
			continue
		}

		rec := domain.Recommendation{
			CourseID:      id,
			Score:         sc.Display,
			OriginalScore: sc.Raw,
		}

		if catalog != nil {
			if course, found := catalog.Get(id); found {
				rec.Title = course.DisplayTitle()
				rec.Category = course.Category
				rec.Price = course.Price
				rec.Level = course.Level
				rec.Language = course.Language
			}
		}

		recs = append(recs, rec)
	}

	return recs
}
