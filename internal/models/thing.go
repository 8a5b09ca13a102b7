// Package models defines the data structures for the things service.
package models

// Thing is one row of the things table.
type Thing struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ThingParam is the query string parameter carrying a new thing's name.
const ThingParam = "thing"

// SuccessMessage is returned with every successful Insert and ListAll.
const SuccessMessage = "Go Serverless v1.0! Your function executed successfully!"

// MissingThingMessage is the plain-text body returned when ThingParam is absent.
const MissingThingMessage = "Please provide thing query param!"

// ThingNameFromParams extracts the thing name from query parameters.
// A nil map and an empty value both count as missing.
func ThingNameFromParams(params map[string]string) (string, error) {
	name, ok := params[ThingParam]
	if !ok || name == "" {
		return "", ErrMissingThing
	}
	return name, nil
}
