package todo

// Slot keys the store persists under.
const (
	TodosKey      = "todos_v1"
	CategoriesKey = "categories_v1"
	DarkModeKey   = "darkMode"
)

const todosSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status", "priority", "createdAt", "updatedAt", "order"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "description": {"type": "string"},
      "status": {"enum": ["todo", "in_progress", "done"]},
      "priority": {"enum": ["low", "medium", "high", "urgent"]},
      "categoryId": {"type": ["string", "null"]},
      "dueDate": {"type": ["string", "null"]},
      "createdAt": {"type": "string"},
      "updatedAt": {"type": "string"},
      "completedAt": {"type": ["string", "null"]},
      "order": {"type": "integer"}
    }
  }
}`

const categoriesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "color", "icon"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string"},
      "color": {"type": "string"},
      "icon": {"type": "string"}
    }
  }
}`

const darkModeSchema = `{"type": "boolean"}`

// SlotSchemas returns the JSON Schema for each persisted slot.
func SlotSchemas() map[string]string {
	return map[string]string{
		TodosKey:      todosSchema,
		CategoriesKey: categoriesSchema,
		DarkModeKey:   darkModeSchema,
	}
}
