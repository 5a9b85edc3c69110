package resolve

import (
	"go.uber.org/zap"

	"rfq-engine/internal/coerce"
	"rfq-engine/internal/diagnostic"
	"rfq-engine/internal/object"
	"rfq-engine/internal/schema"
)

// Resolver resolves batches of extraction records against one schema table.
type Resolver struct {
	table  *schema.Table
	logger *zap.Logger
}

// NewResolver creates a Resolver. A nil table uses the built-in schema;
// a nil logger disables logging.
func NewResolver(table *schema.Table, logger *zap.Logger) *Resolver {
	if table == nil {
		table = schema.Default()
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Resolver{table: table, logger: logger}
}

// Resolve merges mappings into a request object in record order,
// last-write-wins per leaf path. The result is never nil, resolution never
// fails, and resolving the same batch twice yields a structurally
// identical object.
func (r *Resolver) Resolve(mappings []Mapping) (object.Object, diagnostic.Diagnostics) {
	result := object.Object{}

	var diags diagnostic.Diagnostics

	for _, m := range mappings {
		if m.Value == nil {
			diags.AddInfo(diagnostic.CodeEmptyValue, "record has no value", m.Field)

			continue
		}

		spec, ok := r.table.Lookup(m.Field)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnknownField, "no destination for field", m.Field)
			r.logger.Warn("skipping unmapped extraction field",
				zap.String("field", m.Field),
				zap.String("source", m.Source))

			continue
		}

		value, ok := coerce.Coerce(m.Value, spec.Kind)
		if !ok {
			diags.AddInfo(diagnostic.CodeEmptyValue, "value not representable as "+spec.Kind.String(), m.Field)

			continue
		}

		if spec.IsCategorical() && value.Kind == coerce.KindString {
			value.Str = spec.Normalize(value.Str)
		}

		result = object.Set(result, spec.Path, value.Interface())
	}

	return result, diags
}

// Resolve merges mappings using the built-in schema table and no logging.
func Resolve(mappings []Mapping) (object.Object, diagnostic.Diagnostics) {
	return NewResolver(nil, nil).Resolve(mappings)
}
