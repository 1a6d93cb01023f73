package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"snapdish/internal/domain/entity"
	"snapdish/internal/domain/service"
	"snapdish/internal/errors"
	"snapdish/internal/util"
)

func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode json")
	}
	if dec.More() {
		return nil, errors.New("trailing data after json document")
	}

	return doc, nil
}

func decodeObject(body []byte) (map[string]any, error) {
	doc, err := decodeJSON(body)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, errors.Errorf("expected a json object, got %s", kindOf(doc))
	}

	return obj, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}

// str reads an optional string field. Absent and null are reported as not present.
func str(obj map[string]any, key string) (string, bool, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, errors.Errorf("field %q: expected string, got %s", key, kindOf(v))
	}

	return s, true, nil
}

// number reads an optional numeric field.
func number(obj map[string]any, key string) (float64, bool, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0, false, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false, errors.Errorf("field %q: expected number, got %s", key, kindOf(v))
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false, errors.Wrapf(err, "field %q", key)
	}

	return f, true, nil
}

// identifier reads an id that the backend may send as a string or an integer.
func identifier(v any) (string, error) {
	switch id := v.(type) {
	case string:
		return id, nil
	case json.Number:
		if _, err := strconv.ParseInt(id.String(), 10, 64); err != nil {
			return "", errors.Errorf("identifier %s is not an integer", id)
		}

		return id.String(), nil
	default:
		return "", errors.Errorf("identifier: expected string or integer, got %s", kindOf(v))
	}
}

func requiredID(obj map[string]any, key string) (string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return "", errors.Errorf("field %q is missing", key)
	}
	id, err := identifier(v)
	if err != nil {
		return "", errors.Wrapf(err, "field %q", key)
	}
	if id == "" {
		return "", errors.Errorf("field %q is empty", key)
	}

	return id, nil
}

func identifiers(obj map[string]any, key string) ([]string, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, errors.Errorf("field %q: expected array, got %s", key, kindOf(v))
	}

	ids := make([]string, 0, len(list))
	for i, item := range list {
		id, err := identifier(item)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q[%d]", key, i)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// calories floors a non-negative calorie amount to a whole number.
func calories(v float64, key string) (int, error) {
	if v < 0 {
		return 0, errors.Errorf("field %q: negative value %v", key, v)
	}
	if v > math.MaxInt32 {
		return 0, errors.Errorf("field %q: value %v out of range", key, v)
	}

	return int(math.Floor(v)), nil
}

func decodeToken(body []byte) (string, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return "", err
	}

	token, ok, err := str(obj, "access_token")
	if err != nil {
		return "", err
	}
	if !ok || token == "" {
		return "", errors.New(`field "access_token" is missing or empty`)
	}

	tokenType, ok, err := str(obj, "token_type")
	if err != nil {
		return "", err
	}
	if ok && !strings.EqualFold(tokenType, "bearer") {
		return "", errors.Errorf("unsupported token type %q", tokenType)
	}

	return token, nil
}

func decodeRegistration(body []byte) (*entity.RegistrationAck, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	ack := &entity.RegistrationAck{Raw: obj}
	if msg, ok, err := str(obj, "message"); err != nil {
		return nil, err
	} else if ok {
		ack.Message = msg
	}
	if v, ok := obj["userId"]; ok && v != nil {
		id, err := identifier(v)
		if err != nil {
			return nil, errors.Wrap(err, `field "userId"`)
		}
		ack.UserID = id
	}

	return ack, nil
}

func decodeClassification(body []byte) (*entity.ClassificationResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	class, ok, err := str(obj, "predicted_class")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "predicted_class" is missing`)
	}

	estimate, ok, err := number(obj, "estimated_calories")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "estimated_calories" is missing`)
	}
	kcal, err := calories(estimate, "estimated_calories")
	if err != nil {
		return nil, err
	}

	probability, _, err := number(obj, "probability")
	if err != nil {
		return nil, err
	}

	return &entity.ClassificationResult{
		PredictedClass:    class,
		EstimatedCalories: kcal,
		Probability:       probability,
	}, nil
}

// decodeMealCreated reads either a full meal record or the {message, mealId} acknowledgment.
// For an acknowledgment only the ID is set; the caller fills in what it submitted.
func decodeMealCreated(body []byte, loc *time.Location) (meal *entity.Meal, full bool, err error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, false, err
	}

	if _, ok := obj["id"]; ok {
		remote, err := decodeMeal(obj, loc)
		if err != nil {
			return nil, false, err
		}

		return remote.Meal, true, nil
	}

	id, err := requiredID(obj, "mealId")
	if err != nil {
		return nil, false, errors.Wrap(err, "response is neither a meal nor an acknowledgment")
	}

	return &entity.Meal{ID: id}, false, nil
}

func decodeMealList(body []byte, loc *time.Location) ([]*service.RemoteMeal, error) {
	doc, err := decodeJSON(body)
	if err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return nil, errors.Errorf("expected a json array, got %s", kindOf(doc))
	}

	meals := make([]*service.RemoteMeal, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, errors.Errorf("meal %d: expected object, got %s", i, kindOf(item))
		}
		meal, err := decodeMeal(obj, loc)
		if err != nil {
			return nil, errors.Wrapf(err, "meal %d", i)
		}
		meals = append(meals, meal)
	}

	return meals, nil
}

func decodeMeal(obj map[string]any, loc *time.Location) (*service.RemoteMeal, error) {
	id, err := requiredID(obj, "id")
	if err != nil {
		return nil, err
	}

	meal := &entity.Meal{ID: id}

	if v, ok := obj["userId"]; ok && v != nil {
		if meal.UserID, err = identifier(v); err != nil {
			return nil, errors.Wrap(err, `field "userId"`)
		}
	}

	name, ok, err := str(obj, "name")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "name" is missing`)
	}
	meal.Name = name

	if meal.IngredientIDs, err = identifiers(obj, "ingredientIds"); err != nil {
		return nil, err
	}

	kcal, ok, err := number(obj, "calories")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "calories" is missing`)
	}
	if meal.Calories, err = calories(kcal, "calories"); err != nil {
		return nil, err
	}

	rawTime, ok, err := str(obj, "time")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "time" is missing`)
	}
	if meal.Time, err = util.ParseTimestamp(rawTime, loc); err != nil {
		return nil, err
	}

	remote := &service.RemoteMeal{Meal: meal}

	encoded, ok, err := str(obj, "image")
	if err != nil {
		return nil, err
	}
	if ok && encoded != "" {
		data, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, errors.Wrap(err, `field "image"`)
		}
		remote.ImageData = data
	}

	return remote, nil
}

func decodeIngredientsResult(body []byte) (*entity.IngredientsResult, error) {
	obj, err := decodeObject(body)
	if err != nil {
		return nil, err
	}

	ids, err := identifiers(obj, "ingredientIds")
	if err != nil {
		return nil, err
	}
	if ids == nil {
		return nil, errors.New(`field "ingredientIds" is missing`)
	}

	total, ok, err := number(obj, "calories")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(`field "calories" is missing`)
	}
	kcal, err := calories(total, "calories")
	if err != nil {
		return nil, err
	}

	return &entity.IngredientsResult{IngredientIDs: ids, Calories: kcal}, nil
}
