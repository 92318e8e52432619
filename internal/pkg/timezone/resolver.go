package timezone

import "time"

// Resolver 把存储里的 UTC 时间换算成站点展示时区的时间。
// 只做展示层换算，落库的永远是 UTC
type Resolver interface {
	ToTimeZone(utc time.Time) time.Time
}

type utcOffsetResolver struct {
	offset time.Duration
}

// NewUTCOffsetResolver hours 为站点相对 UTC 的偏移小时数，可以为负
func NewUTCOffsetResolver(hours int) Resolver {
	return &utcOffsetResolver{
		offset: time.Duration(hours) * time.Hour,
	}
}

func (r *utcOffsetResolver) ToTimeZone(utc time.Time) time.Time {
	return utc.Add(r.offset)
}
