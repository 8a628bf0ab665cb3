package response

import "github.com/jinzhu/copier"

// Envelope wraps every successful body. Failures use httperr.Response.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

type IDResponse struct {
	ID string `json:"id"`
}

// fill copies a view into its response type. Field names match, so a failure
// here is a programming error.
func fill[T any](src any) *T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copier.Option{DeepCopy: true}); err != nil {
		panic("response: " + err.Error())
	}
	return &dst
}

func fillAll[T any, V any](src []*V) []*T {
	out := make([]*T, len(src))
	for i, v := range src {
		out[i] = fill[T](v)
	}
	return out
}
