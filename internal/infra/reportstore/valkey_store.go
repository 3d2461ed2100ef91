package reportstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/safeoutdoor/backend/internal/domain/report"
)

// ValkeyStore caches reports and trending counters in a
// Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "safeoutdoor"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) GetReport(ctx context.Context, key string) (report.Report, bool, error) {
	cmd := s.client.B().Get().Key(s.reportKey(key)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return report.Report{}, false, nil
		}
		return report.Report{}, false, err
	}
	var rep report.Report
	if err := json.Unmarshal([]byte(payload), &rep); err != nil {
		return report.Report{}, false, err
	}
	return rep, true, nil
}

func (s *ValkeyStore) SetReport(ctx context.Context, key string, rep report.Report, ttl time.Duration) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.reportKey(key)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) IncrActivity(ctx context.Context, activity string) error {
	if activity == "" {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.trendingKey()).Increment(1).Member(activity).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) TopActivities(ctx context.Context, limit int) ([]report.ActivityCount, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.trendingKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}

	out := make([]report.ActivityCount, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i++
					continue
				}
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, report.ActivityCount{Activity: member, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) reportKey(key string) string {
	return fmt.Sprintf("%s:%s", s.prefix, key)
}

func (s *ValkeyStore) trendingKey() string {
	return fmt.Sprintf("%s:trending:activities", s.prefix)
}

var _ report.Store = (*ValkeyStore)(nil)
