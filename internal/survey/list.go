package survey

import "github.com/MikeSquared-Agency/Rollerskates/internal/topsis"

// ModelList is the state of the survey list view.
type ModelList struct {
	Models []topsis.Model
}

func NewModelList(models []topsis.Model) *ModelList {
	return &ModelList{Models: models}
}

// Remove drops the model with the given ID from the displayed list. It is
// called after a successful delete in place of fetching the list again.
func (l *ModelList) Remove(id string) (topsis.Model, bool) {
	for i, m := range l.Models {
		if m.ModelID == id {
			l.Models = append(l.Models[:i:i], l.Models[i+1:]...)
			return m, true
		}
	}
	return topsis.Model{}, false
}

func (l *ModelList) Empty() bool {
	return len(l.Models) == 0
}
