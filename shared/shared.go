package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slotkeeper/shared/cache"
	"slotkeeper/shared/constant"
	"slotkeeper/shared/dto"
	"slotkeeper/shared/failure"
	"slotkeeper/shared/timezone"
)

const (
	cacheKeySeparator       = ":"
	cacheKeyAvailability    = "availability"
	cacheKeyAvailabilityGen = "availability-gen"
	fieldBusinessID         = "business_id"
	fieldID                 = "id"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByBusiness scopes an id lookup to its tenant.
func FilterByBusiness(businessID, id uuid.UUID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq, Table: table},
			dto.Filter{Field: fieldBusinessID, Value: businessID, Operator: dto.FilterOperatorEq, Table: table},
		},
	}
}

// InvalidParam is the 400 returned for a malformed query or path parameter.
func InvalidParam(name, value string) error {
	return failure.BadRequestFromString(fmt.Sprintf("invalid %s: %q", name, value))
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, cacheKeySeparator)
}

// AvailabilityGenerationKey holds the counter every write to a resource's busy time bumps.
func AvailabilityGenerationKey(resourceID uuid.UUID) string {
	return BuildCacheKey(cacheKeyAvailabilityGen, resourceID.String())
}

// AvailabilityCacheKey addresses one resolved date. Bumping the generation orphans every older key.
func AvailabilityCacheKey(businessID, resourceID uuid.UUID, generation int64, date string) string {
	return BuildCacheKey(cacheKeyAvailability, businessID.String(), resourceID.String(), strconv.FormatInt(generation, 10), date)
}

// InvalidateAvailability bumps the generation of each resource. Failures are logged and returned
// joined; entries still expire with the cache TTL.
func InvalidateAvailability(ctx context.Context, c cache.RedisCache, resourceIDs ...uuid.UUID) error {
	var failed []string

	seen := make(map[uuid.UUID]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		if _, ok := seen[id]; ok || id == uuid.Nil {
			continue
		}

		seen[id] = struct{}{}

		if _, err := c.Increment(ctx, AvailabilityGenerationKey(id)); err != nil {
			log.Error().Err(err).Str("resource_id", id.String()).Msg("failed to invalidate availability cache")

			failed = append(failed, id.String())
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to invalidate availability cache for %s", strings.Join(failed, ", "))
	}

	return nil
}
