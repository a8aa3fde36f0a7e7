package mapper

import (
	"ai-comicstory-be/internal/entity"
	"ai-comicstory-be/internal/model"

	"gorm.io/datatypes"
)

type StoryMapper struct{}

func NewStoryMapper() *StoryMapper {
	return &StoryMapper{}
}

func (m *StoryMapper) ToEntity(s *model.Story) *entity.Story {
	if s == nil {
		return nil
	}

	return &entity.Story{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Notes:     s.Notes,
		Theme:     s.Theme,
		Panels:    m.PanelsToEntity(s.Panels),
		CreatedAt: s.CreatedAt,
	}
}

func (m *StoryMapper) ToModel(s *entity.Story) *model.Story {
	if s == nil {
		return nil
	}

	return &model.Story{
		Id:        s.Id,
		UserId:    s.UserId,
		Title:     s.Title,
		Notes:     s.Notes,
		Theme:     s.Theme,
		Panels:    m.PanelsToModel(s.Panels),
		CreatedAt: s.CreatedAt,
	}
}

func (m *StoryMapper) ToEntities(stories []*model.Story) []*entity.Story {
	entities := make([]*entity.Story, len(stories))
	for i, s := range stories {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

// PanelsToModel never returns nil so an empty sequence is stored as '[]', not NULL.
func (m *StoryMapper) PanelsToModel(panels []entity.Panel) datatypes.JSONSlice[model.Panel] {
	out := make(datatypes.JSONSlice[model.Panel], len(panels))
	for i, p := range panels {
		out[i] = model.Panel{
			SceneDescription: p.SceneDescription,
			Text:             p.Text,
			ImageUrl:         p.ImageUrl,
		}
	}
	return out
}

func (m *StoryMapper) PanelsToEntity(panels datatypes.JSONSlice[model.Panel]) []entity.Panel {
	out := make([]entity.Panel, len(panels))
	for i, p := range panels {
		out[i] = entity.Panel{
			SceneDescription: p.SceneDescription,
			Text:             p.Text,
			ImageUrl:         p.ImageUrl,
		}
	}
	return out
}
