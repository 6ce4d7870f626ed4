package l10n

// LookupHook observes and optionally rewrites engine lookups. BeforeLookup
// may adjust the key or arguments; AfterLookup may replace the result.
type LookupHook interface {
	BeforeLookup(ctx *LookupContext)
	AfterLookup(ctx *LookupContext)
}

// LookupContext carries one lookup through its hooks.
type LookupContext struct {
	Language string
	Key      string
	Args     []any
	Result   any
	Metadata map[string]any
}

func (ctx *LookupContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

// SetMetadata attaches a value for later hooks in the chain.
func (ctx *LookupContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

// MetadataValue reads a value attached by an earlier hook.
func (ctx *LookupContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	value, ok := ctx.Metadata[key]
	return value, ok
}

// LookupHookFuncs adapts bare functions to the LookupHook interface.
type LookupHookFuncs struct {
	Before func(ctx *LookupContext)
	After  func(ctx *LookupContext)
}

func (h LookupHookFuncs) BeforeLookup(ctx *LookupContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h LookupHookFuncs) AfterLookup(ctx *LookupContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// MissingKeyHook calls handler whenever a lookup falls through to the raw
// key path, which makes untranslated keys visible during development.
func MissingKeyHook(handler func(language, key string)) LookupHook {
	return LookupHookFuncs{
		After: func(ctx *LookupContext) {
			if handler == nil || ctx == nil {
				return
			}
			if result, ok := ctx.Result.(string); ok && result == ctx.Key {
				handler(ctx.Language, ctx.Key)
			}
		},
	}
}
