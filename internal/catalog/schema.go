// internal/catalog/schema.go
package catalog

// JSON schemas the static data files are validated against at startup. A file
// that fails validation aborts the boot rather than serving a partial catalog.

const universitiesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "city", "rating", "budgetTier", "minEnt", "tags"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "city": {"type": "string", "minLength": 1},
      "rating": {"type": "number", "minimum": 0, "maximum": 5},
      "tuitionMin": {"type": "integer", "minimum": 0},
      "tuitionMax": {"type": "integer", "minimum": 0},
      "budgetTier": {"type": "string", "enum": ["low", "medium", "high"]},
      "minEnt": {"type": "integer", "minimum": 0, "maximum": 140},
      "tags": {"type": "array", "items": {"type": "string"}},
      "worldRank": {"type": "integer", "minimum": 1}
    },
    "additionalProperties": false
  }
}`

const programsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "universityId", "name", "requirements"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "universityId": {"type": "string", "minLength": 1},
      "name": {"type": "string", "minLength": 1},
      "degree": {"type": "string"},
      "requirements": {
        "type": "object",
        "required": ["minEnt", "requiredSubjects"],
        "properties": {
          "minEnt": {"type": "integer", "minimum": 0, "maximum": 140},
          "minIelts": {"type": "number", "minimum": 0, "maximum": 9},
          "requiredSubjects": {"type": "array", "items": {"type": "string"}},
          "portfolioRequired": {"type": "boolean"},
          "interviewRequired": {"type": "boolean"}
        },
        "additionalProperties": false
      }
    },
    "additionalProperties": false
  }
}`
