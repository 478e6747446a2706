package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix          = "user:%d"
	MentorProfileKeyPrefix = "mentor_profile:user:%d"
	TopMentorsKeyPrefix    = "top_mentors:%s:%d"
)

const (
	UserTTL          = 5 * time.Minute
	MentorProfileTTL = 5 * time.Minute
	TopMentorsTTL    = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func MentorProfileKey(userID uint) string {
	return fmt.Sprintf(MentorProfileKeyPrefix, userID)
}

func TopMentorsKey(technology string, limit int) string {
	return fmt.Sprintf(TopMentorsKeyPrefix, technology, limit)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateMentorProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, MentorProfileKey(userID))
}
