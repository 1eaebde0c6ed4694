package validate_test

import (
	"testing"

	"github.com/ardanlabs/scalability/foundation/validate"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

type request struct {
	Volume *float64 `json:"tx_volume" validate:"omitempty,gte=0"`
	Shards *int     `json:"num_shards" validate:"omitempty,gt=0"`
	Score  *float64 `json:"security" validate:"omitempty,gte=0,lte=100"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestCheck(t *testing.T) {
	type table struct {
		name   string
		req    request
		fields []string
	}

	tt := []table{
		{name: "empty", req: request{}},
		{name: "valid", req: request{Volume: ptr(10.0), Shards: ptr(4), Score: ptr(100.0)}},
		{name: "negative", req: request{Volume: ptr(-1.0)}, fields: []string{"tx_volume"}},
		{name: "zero-shards", req: request{Shards: ptr(0)}, fields: []string{"num_shards"}},
		{name: "multi", req: request{Shards: ptr(-2), Score: ptr(101.0)}, fields: []string{"num_shards", "security"}},
	}

	t.Log("Given the need to validate request models.")
	{
		for testID, tst := range tt {
			f := func(t *testing.T) {
				t.Logf("\tTest %d:\tWhen checking the %q request.", testID, tst.name)
				{
					err := validate.Check(tst.req)
					if len(tst.fields) == 0 {
						if err != nil {
							t.Fatalf("\t%s\tTest %d:\tShould be able to validate the request: %v", failed, testID, err)
						}
						t.Logf("\t%s\tTest %d:\tShould be able to validate the request.", success, testID)
						return
					}

					if !validate.IsFieldErrors(err) {
						t.Fatalf("\t%s\tTest %d:\tShould get field errors: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould get field errors.", success, testID)

					fields := validate.GetFieldErrors(err).Fields()
					if len(fields) != len(tst.fields) {
						t.Logf("\t\tTest %d:\tgot: %v", testID, fields)
						t.Fatalf("\t%s\tTest %d:\tShould get %d field errors.", failed, testID, len(tst.fields))
					}
					for _, name := range tst.fields {
						if _, exists := fields[name]; !exists {
							t.Fatalf("\t%s\tTest %d:\tShould get an error for field %q.", failed, testID, name)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould get errors keyed by json field names.", success, testID)
				}
			}

			t.Run(tst.name, f)
		}
	}
}
