// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"time"

	"github.com/cadenza-project/cadenza/lib/optional"
	"github.com/cadenza-project/cadenza/lib/snowflake"
)

// GuildFeature is a feature flag string attached to a guild. The set
// is open-ended; unrecognized flags pass through untouched.
type GuildFeature string

const (
	GuildFeatureAnimatedIcon     GuildFeature = "ANIMATED_ICON"
	GuildFeatureBanner           GuildFeature = "BANNER"
	GuildFeatureCommunity        GuildFeature = "COMMUNITY"
	GuildFeatureDiscoverable     GuildFeature = "DISCOVERABLE"
	GuildFeatureInviteSplash     GuildFeature = "INVITE_SPLASH"
	GuildFeatureNews             GuildFeature = "NEWS"
	GuildFeaturePartnered        GuildFeature = "PARTNERED"
	GuildFeatureVanityURL        GuildFeature = "VANITY_URL"
	GuildFeatureVerified         GuildFeature = "VERIFIED"
	GuildFeatureVIPRegions       GuildFeature = "VIP_REGIONS"
	GuildFeatureWelcomeScreen    GuildFeature = "WELCOME_SCREEN_ENABLED"
	GuildFeatureMemberScreening  GuildFeature = "MEMBER_VERIFICATION_GATE_ENABLED"
	GuildFeaturePreviewEnabled   GuildFeature = "PREVIEW_ENABLED"
	GuildFeatureMoreEmoji        GuildFeature = "MORE_EMOJI"
	GuildFeatureCommerce         GuildFeature = "COMMERCE"
	GuildFeaturePublicDisabled   GuildFeature = "PUBLIC_DISABLED"
	GuildFeatureFeaturable       GuildFeature = "FEATURABLE"
	GuildFeatureMonetization     GuildFeature = "MONETIZATION_ENABLED"
	GuildFeatureTicketedEvents   GuildFeature = "TICKETED_EVENTS_ENABLED"
	GuildFeatureWidgetChannelSet GuildFeature = "WIDGET_ENABLED"
)

// VerificationLevel gates what accounts may participate in a guild.
type VerificationLevel int

const (
	VerificationLevelNone     VerificationLevel = 0
	VerificationLevelLow      VerificationLevel = 1
	VerificationLevelMedium   VerificationLevel = 2
	VerificationLevelHigh     VerificationLevel = 3
	VerificationLevelVeryHigh VerificationLevel = 4
)

// MessageNotificationsLevel is a guild's default notification setting.
type MessageNotificationsLevel int

const (
	MessageNotificationsAllMessages  MessageNotificationsLevel = 0
	MessageNotificationsOnlyMentions MessageNotificationsLevel = 1
)

// ContentFilterLevel is a guild's explicit-content scanning setting.
type ContentFilterLevel int

const (
	ContentFilterDisabled            ContentFilterLevel = 0
	ContentFilterMembersWithoutRoles ContentFilterLevel = 1
	ContentFilterAllMembers          ContentFilterLevel = 2
)

// MFALevel says whether moderation actions require multi-factor auth.
type MFALevel int

const (
	MFALevelNone     MFALevel = 0
	MFALevelElevated MFALevel = 1
)

// PremiumTier is a guild's boost level.
type PremiumTier int

const (
	PremiumTierNone PremiumTier = 0
	PremiumTier1    PremiumTier = 1
	PremiumTier2    PremiumTier = 2
	PremiumTier3    PremiumTier = 3
)

// SystemChannelFlag is a bitfield suppressing categories of system
// channel messages.
type SystemChannelFlag uint

const (
	SystemChannelFlagSuppressUserJoin            SystemChannelFlag = 1 << 0
	SystemChannelFlagSuppressPremiumSubscription SystemChannelFlag = 1 << 1
)

// Role is a guild role.
type Role struct {
	ID snowflake.ID
	// GuildID is injected from the delivery context; role payloads
	// never carry it themselves.
	GuildID snowflake.ID
	Name    string
	// Color is the 24-bit RGB color; zero renders as colorless.
	Color         int
	IsHoisted     bool
	Position      int
	Permissions   Permission
	IsManaged     bool
	IsMentionable bool
}

// Member is a user's membership in one guild.
type Member struct {
	// GuildID is resolved from the payload's guild_id field or from
	// caller-supplied context.
	GuildID snowflake.ID
	// User is the account behind the membership. Aggregate deliveries
	// may hoist the user object to an enclosing level and share it
	// across nested member records.
	User User
	// Nickname is the per-guild display name; null means the username
	// is shown.
	Nickname optional.Value[string]
	RoleIDs  []snowflake.ID
	JoinedAt time.Time
	// PremiumSince is when the member started boosting; null means
	// not boosting.
	PremiumSince optional.Value[time.Time]
	// IsDeaf and IsMute are undefined in deliveries that carry no
	// voice information.
	IsDeaf optional.Value[bool]
	IsMute optional.Value[bool]
}

// PartialGuild is the minimal guild shape embedded in richer guild
// entities and in invite previews.
type PartialGuild struct {
	ID       snowflake.ID
	Name     string
	IconHash optional.Value[string]
	Features []GuildFeature
}

// Guild is the full guild shape common to REST responses and gateway
// deliveries.
type Guild struct {
	PartialGuild
	SplashHash          optional.Value[string]
	DiscoverySplashHash optional.Value[string]
	OwnerID             snowflake.ID
	Region              string
	AFKChannelID        optional.Value[snowflake.ID]
	AFKTimeout          time.Duration
	VerificationLevel   VerificationLevel
	// DefaultMessageNotifications applies to members without an
	// explicit per-guild setting.
	DefaultMessageNotifications MessageNotificationsLevel
	ExplicitContentFilter       ContentFilterLevel
	MFALevel                    MFALevel
	// ApplicationID is set when a bot created the guild.
	ApplicationID            optional.Value[snowflake.ID]
	IsWidgetEnabled          optional.Value[bool]
	WidgetChannelID          optional.Value[snowflake.ID]
	SystemChannelID          optional.Value[snowflake.ID]
	SystemChannelFlags       SystemChannelFlag
	RulesChannelID           optional.Value[snowflake.ID]
	MaxPresences             optional.Value[int]
	MaxMembers               optional.Value[int]
	MaxVideoChannelUsers     optional.Value[int]
	VanityURLCode            optional.Value[string]
	Description              optional.Value[string]
	BannerHash               optional.Value[string]
	PremiumTier              PremiumTier
	PremiumSubscriptionCount optional.Value[int]
	PreferredLocale          string
	PublicUpdatesChannelID   optional.Value[snowflake.ID]
}

// RESTGuild is a guild fetched over REST, which inlines the role and
// emoji collections and approximate member counts.
type RESTGuild struct {
	Guild
	Roles  map[snowflake.ID]Role
	Emojis map[snowflake.ID]KnownCustomEmoji
	// ApproximateMemberCount and ApproximateActiveMemberCount are
	// only sent when the fetch asked for counts.
	ApproximateMemberCount       optional.Value[int]
	ApproximateActiveMemberCount optional.Value[int]
}

// GatewayGuild is a guild delivered over the event stream. The
// sub-entity collections travel separately in the aggregate; see the
// transcoder's gateway guild decode.
type GatewayGuild struct {
	Guild
	// IsLarge, JoinedAt, and MemberCount are only sent on guild
	// create, not on guild update.
	IsLarge     optional.Value[bool]
	JoinedAt    optional.Value[time.Time]
	MemberCount optional.Value[int]
}

// GuildWidget is a guild's embeddable-widget setting.
type GuildWidget struct {
	ChannelID optional.Value[snowflake.ID]
	IsEnabled bool
}

// GuildPreview is the public preview of a discoverable guild.
type GuildPreview struct {
	PartialGuild
	SplashHash               optional.Value[string]
	DiscoverySplashHash      optional.Value[string]
	Emojis                   map[snowflake.ID]KnownCustomEmoji
	Description              optional.Value[string]
	ApproximateMemberCount   int
	ApproximatePresenceCount int
}

// GuildMemberBan is one entry in a guild's ban list.
type GuildMemberBan struct {
	Reason optional.Value[string]
	User   User
}

// IntegrationAccount is the external account an integration connects.
type IntegrationAccount struct {
	// ID is the external service's identifier, not a snowflake.
	ID   string
	Name string
}

// PartialIntegration is the integration shape embedded in audit logs
// and connection listings.
type PartialIntegration struct {
	ID      snowflake.ID
	Name    string
	Type    string
	Account IntegrationAccount
}

// IntegrationExpireBehavior says what happens to a member whose
// integration subscription lapses.
type IntegrationExpireBehavior int

const (
	IntegrationExpireRemoveRole IntegrationExpireBehavior = 0
	IntegrationExpireKick       IntegrationExpireBehavior = 1
)

// Integration is a guild's full integration record.
type Integration struct {
	PartialIntegration
	IsEnabled bool
	IsSyncing bool
	// RoleID is the subscriber role the integration manages.
	RoleID            optional.Value[snowflake.ID]
	IsEmojisEnabled   optional.Value[bool]
	ExpireBehavior    IntegrationExpireBehavior
	ExpireGracePeriod time.Duration
	User              User
	LastSyncedAt      optional.Value[time.Time]
}
