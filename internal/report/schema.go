package report

// Schema is the JSON Schema (Draft 2020-12) for the JSON output of
// the add and halve commands. It documents the structure written by
// WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/hello/result.schema.json",
  "title": "Hello Arithmetic Result",
  "description": "Output schema for hello add|halve --format=json",
  "type": "object",
  "required": ["version", "operation", "operands", "value"],
  "additionalProperties": false,
  "properties": {
    "version": {
      "type": "string",
      "description": "Tool version that produced the result"
    },
    "operation": {
      "type": "string",
      "enum": ["add", "halve"],
      "description": "Operation that was evaluated"
    },
    "operands": {
      "type": "array",
      "items": { "type": "number" },
      "minItems": 1,
      "maxItems": 2
    },
    "value": {
      "type": "number",
      "description": "Computed result"
    }
  }
}`
