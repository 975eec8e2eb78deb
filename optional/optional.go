package optional

type Optional interface {
	Get() interface{}
	IsNone() bool
}

type None struct{}

func (o None) Get() interface{} { return struct{}{} }
func (o None) IsNone() bool     { return true }

type Some struct {
	Value interface{}
}

func (o Some) Get() interface{} { return o.Value }
func (o Some) IsNone() bool     { return false }

// OrElse returns o's value, or def when o is none.
func OrElse(o Optional, def interface{}) interface{} {
	if o.IsNone() {
		return def
	}
	return o.Get()
}
