// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package common

import (
	"math"
	"time"
)

// EarnedTimeLayout is the display layout for earned timestamps.
//
// Example: 2025-10-17 14:23:45
const EarnedTimeLayout = "2006-01-02 15:04:05"

// EpochToTime converts seconds since the Unix epoch, as stored by the save emulator,
// into a time.Time. Values beyond the int64 range are clamped.
func EpochToTime(secs uint64) time.Time {
	if secs > math.MaxInt64 {
		secs = math.MaxInt64
	}
	return time.Unix(int64(secs), 0)
}

// FormatEarnedTime formats an epoch-seconds timestamp in the local timezone.
//
// Example:
//   - Input: 1000 (TZ=UTC)
//   - Output: 1970-01-01 00:16:40
func FormatEarnedTime(secs uint64) string {
	return FormatEarnedTimeIn(secs, time.Local)
}

// FormatEarnedTimeIn formats an epoch-seconds timestamp in the given location.
func FormatEarnedTimeIn(secs uint64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return EpochToTime(secs).In(loc).Format(EarnedTimeLayout)
}
