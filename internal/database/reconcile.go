package database

import (
	"github.com/thenoetrevino/workboard/internal/models"
	"gorm.io/gorm"
)

// tagReconciliation is the outcome of resolving tag names against storage.
// Tags holds one row per requested name in request order; Staged is the
// subset that does not exist yet and still has to be inserted.
type tagReconciliation struct {
	Tags   []*models.Tag
	Staged []*models.Tag
}

// resolveTags maps names to existing tag rows with one query and stages a new
// unsaved Tag for every name without a match
func resolveTags(tx *gorm.DB, names []string) (*tagReconciliation, error) {
	unique := models.UniqueTagNames(names)
	result := &tagReconciliation{Tags: make([]*models.Tag, 0, len(unique))}
	if len(unique) == 0 {
		return result, nil
	}

	var existing []*models.Tag
	if err := tx.Where("name IN ?", unique).Find(&existing).Error; err != nil {
		return nil, err
	}

	byName := make(map[string]*models.Tag, len(existing))
	for _, tag := range existing {
		byName[tag.Name] = tag
	}

	for _, name := range unique {
		if tag, ok := byName[name]; ok {
			result.Tags = append(result.Tags, tag)
			continue
		}
		tag := &models.Tag{Name: name}
		result.Staged = append(result.Staged, tag)
		result.Tags = append(result.Tags, tag)
	}

	return result, nil
}

// persist inserts the staged tags in tx so every entry in Tags has an id.
// A concurrent insert of the same name surfaces as a unique violation.
func (rec *tagReconciliation) persist(tx *gorm.DB) error {
	if len(rec.Staged) == 0 {
		return nil
	}
	return tx.Create(&rec.Staged).Error
}

// reconcileTags resolves names and persists whatever had to be staged
func reconcileTags(tx *gorm.DB, names []string) ([]*models.Tag, error) {
	rec, err := resolveTags(tx, names)
	if err != nil {
		return nil, err
	}
	if err := rec.persist(tx); err != nil {
		return nil, err
	}
	return rec.Tags, nil
}
