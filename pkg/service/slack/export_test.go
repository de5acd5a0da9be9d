package slack

var (
	BuildReplyBlocks         = buildReplyBlocks
	BuildDismissedMenuBlocks = buildDismissedMenuBlocks
	IsRateLimitError         = isRateLimitError
	ExtractRetryAfter        = extractRetryAfter
)

// BotUserID returns the user ID of the bot. It's just for testing.
func (x *Service) BotUserID() string {
	return x.userID
}

type UserProfileCache = userProfileCache

// GetProfileCache returns the profile cache for testing.
func (x *Service) GetProfileCache() map[string]*userProfileCache {
	return x.profileCache
}

// SetProfileCache sets the profile cache for testing.
func (x *Service) SetProfileCache(cache map[string]*userProfileCache) {
	x.profileCache = cache
}
