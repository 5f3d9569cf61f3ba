// Package form implements the validation pipeline shared by the three public
// forms: a declarative per-field rule table, sanitizers producing typed
// payloads, and an aggregate validator whose verdict is the sole gate for
// persistence. File-typed rules are enforced by the upload guard, which reads
// the same table.
package form

// Result is the aggregate validation verdict for one sanitized payload.
// Valid is true iff Errors is empty.
type Result struct {
	Valid  bool              `json:"isValid"`
	Errors map[string]string `json:"errors"`
}

// Validate applies every rule of the form kind over the sanitized values and
// collects an error map keyed by field name. Field order does not affect the
// outcome; no rule depends on another field's value. File rules are skipped
// here because a file is not a string; the upload guard applies them.
func Validate(k Kind, values map[string]string) Result {
	errs := make(map[string]string)
	for _, r := range Rules(k) {
		if r.Check == CheckFile {
			continue
		}
		if msg := r.Apply(values[r.Field]); msg != "" {
			errs[r.Field] = msg
		}
	}
	return Result{Valid: len(errs) == 0, Errors: errs}
}
