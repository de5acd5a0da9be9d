package slack

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/interfaces"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/errs"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/errutil"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/logging"
	"github.com/d8o8m8-lab/production-bot-railway/pkg/utils/test"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"
)

type userProfileCache struct {
	Name      string
	ExpiresAt time.Time
}

const UserProfileCacheExpiry = 10 * time.Minute

// Service talks to Slack on behalf of the dialog bot. It posts replies into
// direct message channels and resolves operator names.
type Service struct {
	client interfaces.SlackClient
	slackMetadata
	// User profile cache
	profileCache      map[string]*userProfileCache
	profileCacheMutex sync.RWMutex
	// User profile lock per userID to prevent concurrent API calls
	profileLocks      map[string]*sync.Mutex
	profileLocksMutex sync.Mutex
	// Singleton rate-limited updater shared across all channels
	menuUpdater MenuUpdater
}

type slackMetadata struct {
	teamID string
	botID  string
	userID string
}

var _ interfaces.ProfileResolver = &Service{}

// ServiceOption represents a configuration option for Service
type ServiceOption func(*Service)

// WithUpdaterOptions sets options for the rate-limited menu updater
func WithUpdaterOptions(opts ...UpdaterOption) ServiceOption {
	return func(s *Service) {
		s.menuUpdater = NewRateLimitedUpdater(s.client, opts...)
	}
}

func New(client interfaces.SlackClient, opts ...ServiceOption) (*Service, error) {
	s := &Service{
		client:       client,
		profileCache: make(map[string]*userProfileCache),
		profileLocks: make(map[string]*sync.Mutex),
	}

	for _, opt := range opts {
		opt(s)
	}
	if s.menuUpdater == nil {
		s.menuUpdater = NewRateLimitedUpdater(client)
	}

	authTest, err := s.client.AuthTest()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to auth test of slack", goerr.T(errs.TagSlackError))
	}

	s.userID = authTest.UserID
	s.teamID = authTest.TeamID
	s.botID = authTest.BotID

	logging.Default().Info("slack bot authenticated",
		"team", authTest.Team,
		"user_id", authTest.UserID,
		"bot_id", authTest.BotID,
	)

	return s, nil
}

func NewTestService(t *testing.T) *Service {
	envs := test.NewEnvVars(t, "TEST_SLACK_OAUTH_TOKEN")
	client := slack.New(envs.Get("TEST_SLACK_OAUTH_TOKEN"))

	svc, err := New(client, WithUpdaterOptions(WithInterval(100*time.Millisecond)))
	gt.NoError(t, err).Required()
	t.Cleanup(svc.Stop)

	return svc
}

// IsBotUser reports whether userID is the bot itself.
func (x *Service) IsBotUser(userID string) bool {
	return x.userID == userID
}

func (x *Service) BotID() string {
	return x.botID
}

func (x *Service) TeamID() string {
	return x.teamID
}

// NewReplier returns a replier that posts into channelID. For a direct
// message this is the IM channel, for slash commands the user ID.
func (x *Service) NewReplier(channelID string) interfaces.Replier {
	return &Replier{svc: x, channelID: channelID}
}

// DismissMenu replaces the buttons of a menu message with the chosen label so
// that the same menu cannot be clicked twice. The update runs asynchronously.
func (x *Service) DismissMenu(ctx context.Context, channelID, timestamp, text, choice string) {
	x.menuUpdater.Dismiss(ctx, MenuDismissRequest{
		ChannelID: channelID,
		Timestamp: timestamp,
		Text:      text,
		Choice:    choice,
	})
}

func (x *Service) fetchUserDisplayName(ctx context.Context, userID string) (string, error) {
	user, err := x.client.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user info",
			goerr.T(errs.TagSlackError),
			goerr.TV(errutil.UserIDKey, userID))
	}

	if user != nil {
		if user.Profile.DisplayName != "" {
			return user.Profile.DisplayName, nil
		}
		if user.Profile.RealName != "" {
			return user.Profile.RealName, nil
		}
		if user.RealName != "" {
			return user.RealName, nil
		}
		if user.Name != "" {
			return user.Name, nil
		}
	}

	return userID, nil
}

// GetUserProfile returns the user's display name
func (x *Service) GetUserProfile(ctx context.Context, userID string) (string, error) {
	logger := logging.From(ctx)

	x.profileCacheMutex.RLock()
	if cached, exists := x.profileCache[userID]; exists && time.Now().Before(cached.ExpiresAt) {
		x.profileCacheMutex.RUnlock()
		logger.Debug("returning cached user profile", "user_id", userID)
		return cached.Name, nil
	}
	x.profileCacheMutex.RUnlock()

	x.profileLocksMutex.Lock()
	if _, exists := x.profileLocks[userID]; !exists {
		x.profileLocks[userID] = &sync.Mutex{}
	}
	userLock := x.profileLocks[userID]
	x.profileLocksMutex.Unlock()

	userLock.Lock()
	defer userLock.Unlock()

	// Another goroutine may have fetched it while we waited
	x.profileCacheMutex.RLock()
	if cached, exists := x.profileCache[userID]; exists && time.Now().Before(cached.ExpiresAt) {
		x.profileCacheMutex.RUnlock()
		logger.Debug("returning cached user profile after lock", "user_id", userID)
		return cached.Name, nil
	}
	x.profileCacheMutex.RUnlock()

	displayName, err := x.fetchUserDisplayName(ctx, userID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get user display name")
	}

	x.profileCacheMutex.Lock()
	x.profileCache[userID] = &userProfileCache{
		Name:      displayName,
		ExpiresAt: time.Now().Add(UserProfileCacheExpiry),
	}
	x.profileCacheMutex.Unlock()

	logger.Debug("cached user profile", "user_id", userID, "name", displayName)
	return displayName, nil
}

// ClearExpiredProfileCache removes expired profile cache entries
func (x *Service) ClearExpiredProfileCache() {
	x.profileCacheMutex.Lock()
	defer x.profileCacheMutex.Unlock()

	now := time.Now()
	for userID, cached := range x.profileCache {
		if now.After(cached.ExpiresAt) {
			delete(x.profileCache, userID)
		}
	}
}

// Stop stops the background menu updater.
func (x *Service) Stop() {
	if x.menuUpdater != nil {
		x.menuUpdater.Stop()
	}
}
