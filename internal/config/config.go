// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// AppConfig is the root of the resolved branding and UI configuration.
//
// Every field is a plain value (no maps, slices or pointers), so a copy of an
// AppConfig is a deep copy. The accessor in this package hands out copies
// only; the process-wide snapshot itself is never exposed for mutation.
type AppConfig struct {
	// Brand holds textual and identity metadata rendered by the web pages.
	Brand BrandConfig `json:"brand" yaml:"brand" toml:"brand"`

	// Buttons holds per-view visibility toggles of interactive controls.
	Buttons ButtonsConfig `json:"buttons" yaml:"buttons" toml:"buttons"`
}

// BrandConfig groups application, Open Graph, site and landing-page
// settings.
type BrandConfig struct {
	App  BrandApp     `json:"app" yaml:"app" toml:"app"`
	OG   OpenGraph    `json:"og" yaml:"og" toml:"og"`
	Site Site         `json:"site" yaml:"site" toml:"site"`
	HTML HTMLSections `json:"html" yaml:"html" toml:"html"`
}

// BrandApp is the product identity shown on the landing and join pages.
type BrandApp struct {
	// Language is an ISO 639-1 two-letter code (e.g. "en").
	Language string `json:"language" yaml:"language" toml:"language"`
	Name     string `json:"name" yaml:"name" toml:"name"`
	// Title may contain inline HTML.
	Title           string `json:"title" yaml:"title" toml:"title"`
	Description     string `json:"description" yaml:"description" toml:"description"`
	JoinDescription string `json:"joinDescription" yaml:"joinDescription" toml:"joinDescription"`
	JoinButtonLabel string `json:"joinButtonLabel" yaml:"joinButtonLabel" toml:"joinButtonLabel"`
	JoinLastLabel   string `json:"joinLastLabel" yaml:"joinLastLabel" toml:"joinLastLabel"`
}

// OpenGraph holds the og:* meta tags. Image and URL must be absolute
// http(s) URLs.
type OpenGraph struct {
	Type        string `json:"type" yaml:"type" toml:"type"`
	SiteName    string `json:"siteName" yaml:"siteName" toml:"siteName"`
	Title       string `json:"title" yaml:"title" toml:"title"`
	Description string `json:"description" yaml:"description" toml:"description"`
	Image       string `json:"image" yaml:"image" toml:"image"`
	URL         string `json:"url" yaml:"url" toml:"url"`
}

// Site holds per-page <title> strings and icon paths.
type Site struct {
	ShortcutIcon           string `json:"shortcutIcon" yaml:"shortcutIcon" toml:"shortcutIcon"`
	AppleTouchIcon         string `json:"appleTouchIcon" yaml:"appleTouchIcon" toml:"appleTouchIcon"`
	LandingTitle           string `json:"landingTitle" yaml:"landingTitle" toml:"landingTitle"`
	NewCallTitle           string `json:"newCallTitle" yaml:"newCallTitle" toml:"newCallTitle"`
	NewCallRoomTitle       string `json:"newCallRoomTitle" yaml:"newCallRoomTitle" toml:"newCallRoomTitle"`
	NewCallRoomDescription string `json:"newCallRoomDescription" yaml:"newCallRoomDescription" toml:"newCallRoomDescription"`
	LoginTitle             string `json:"loginTitle" yaml:"loginTitle" toml:"loginTitle"`
	ClientTitle            string `json:"clientTitle" yaml:"clientTitle" toml:"clientTitle"`
	PrivacyPolicyTitle     string `json:"privacyPolicyTitle" yaml:"privacyPolicyTitle" toml:"privacyPolicyTitle"`
	StunTurnTitle          string `json:"stunTurnTitle" yaml:"stunTurnTitle" toml:"stunTurnTitle"`
	NotFoundTitle          string `json:"notFoundTitle" yaml:"notFoundTitle" toml:"notFoundTitle"`
}

// HTMLSections toggles optional sections of the landing page.
type HTMLSections struct {
	Features    bool `json:"features" yaml:"features" toml:"features"`
	Browsers    bool `json:"browsers" yaml:"browsers" toml:"browsers"`
	Teams       bool `json:"teams" yaml:"teams" toml:"teams"`
	TryEasier   bool `json:"tryEasier" yaml:"tryEasier" toml:"tryEasier"`
	PoweredBy   bool `json:"poweredBy" yaml:"poweredBy" toml:"poweredBy"`
	Sponsors    bool `json:"sponsors" yaml:"sponsors" toml:"sponsors"`
	Advertisers bool `json:"advertisers" yaml:"advertisers" toml:"advertisers"`
	Footer      bool `json:"footer" yaml:"footer" toml:"footer"`
}

// ButtonsConfig holds one set of button flags per view. A button identifier
// that appears in several views (e.g. showFileShareBtn) is an independent
// flag in each of them.
type ButtonsConfig struct {
	Main       MainButtons       `json:"main" yaml:"main" toml:"main"`
	Chat       ChatButtons       `json:"chat" yaml:"chat" toml:"chat"`
	Caption    CaptionButtons    `json:"caption" yaml:"caption" toml:"caption"`
	Settings   SettingsButtons   `json:"settings" yaml:"settings" toml:"settings"`
	Remote     RemoteButtons     `json:"remote" yaml:"remote" toml:"remote"`
	Local      LocalButtons      `json:"local" yaml:"local" toml:"local"`
	Whiteboard WhiteboardButtons `json:"whiteboard" yaml:"whiteboard" toml:"whiteboard"`
}

// MainButtons controls the main call toolbar.
type MainButtons struct {
	ShowShareQr            bool `json:"showShareQr" yaml:"showShareQr" toml:"showShareQr"`
	ShowShareRoomBtn       bool `json:"showShareRoomBtn" yaml:"showShareRoomBtn" toml:"showShareRoomBtn"`
	ShowHideMeBtn          bool `json:"showHideMeBtn" yaml:"showHideMeBtn" toml:"showHideMeBtn"`
	ShowAudioBtn           bool `json:"showAudioBtn" yaml:"showAudioBtn" toml:"showAudioBtn"`
	ShowVideoBtn           bool `json:"showVideoBtn" yaml:"showVideoBtn" toml:"showVideoBtn"`
	ShowScreenBtn          bool `json:"showScreenBtn" yaml:"showScreenBtn" toml:"showScreenBtn"`
	ShowRecordStreamBtn    bool `json:"showRecordStreamBtn" yaml:"showRecordStreamBtn" toml:"showRecordStreamBtn"`
	ShowChatRoomBtn        bool `json:"showChatRoomBtn" yaml:"showChatRoomBtn" toml:"showChatRoomBtn"`
	ShowCaptionRoomBtn     bool `json:"showCaptionRoomBtn" yaml:"showCaptionRoomBtn" toml:"showCaptionRoomBtn"`
	ShowRoomEmojiPickerBtn bool `json:"showRoomEmojiPickerBtn" yaml:"showRoomEmojiPickerBtn" toml:"showRoomEmojiPickerBtn"`
	ShowMyHandBtn          bool `json:"showMyHandBtn" yaml:"showMyHandBtn" toml:"showMyHandBtn"`
	ShowWhiteboardBtn      bool `json:"showWhiteboardBtn" yaml:"showWhiteboardBtn" toml:"showWhiteboardBtn"`
	ShowSnapshotRoomBtn    bool `json:"showSnapshotRoomBtn" yaml:"showSnapshotRoomBtn" toml:"showSnapshotRoomBtn"`
	ShowFileShareBtn       bool `json:"showFileShareBtn" yaml:"showFileShareBtn" toml:"showFileShareBtn"`
	ShowDocumentPipBtn     bool `json:"showDocumentPipBtn" yaml:"showDocumentPipBtn" toml:"showDocumentPipBtn"`
	ShowMySettingsBtn      bool `json:"showMySettingsBtn" yaml:"showMySettingsBtn" toml:"showMySettingsBtn"`
	ShowAboutBtn           bool `json:"showAboutBtn" yaml:"showAboutBtn" toml:"showAboutBtn"`
}

// ChatButtons controls the chat panel.
type ChatButtons struct {
	ShowTogglePinBtn       bool `json:"showTogglePinBtn" yaml:"showTogglePinBtn" toml:"showTogglePinBtn"`
	ShowMaxBtn             bool `json:"showMaxBtn" yaml:"showMaxBtn" toml:"showMaxBtn"`
	ShowSaveMessageBtn     bool `json:"showSaveMessageBtn" yaml:"showSaveMessageBtn" toml:"showSaveMessageBtn"`
	ShowMarkDownBtn        bool `json:"showMarkDownBtn" yaml:"showMarkDownBtn" toml:"showMarkDownBtn"`
	ShowChatGPTBtn         bool `json:"showChatGPTBtn" yaml:"showChatGPTBtn" toml:"showChatGPTBtn"`
	ShowFileShareBtn       bool `json:"showFileShareBtn" yaml:"showFileShareBtn" toml:"showFileShareBtn"`
	ShowShareVideoAudioBtn bool `json:"showShareVideoAudioBtn" yaml:"showShareVideoAudioBtn" toml:"showShareVideoAudioBtn"`
	ShowParticipantsBtn    bool `json:"showParticipantsBtn" yaml:"showParticipantsBtn" toml:"showParticipantsBtn"`
}

// CaptionButtons controls the captions panel.
type CaptionButtons struct {
	ShowTogglePinBtn bool `json:"showTogglePinBtn" yaml:"showTogglePinBtn" toml:"showTogglePinBtn"`
	ShowMaxBtn       bool `json:"showMaxBtn" yaml:"showMaxBtn" toml:"showMaxBtn"`
}

// SettingsButtons controls the settings dialog.
type SettingsButtons struct {
	ShowMicOptionsBtn       bool `json:"showMicOptionsBtn" yaml:"showMicOptionsBtn" toml:"showMicOptionsBtn"`
	ShowTabRoomPeerName     bool `json:"showTabRoomPeerName" yaml:"showTabRoomPeerName" toml:"showTabRoomPeerName"`
	ShowTabRoomParticipants bool `json:"showTabRoomParticipants" yaml:"showTabRoomParticipants" toml:"showTabRoomParticipants"`
	ShowTabRoomSecurity     bool `json:"showTabRoomSecurity" yaml:"showTabRoomSecurity" toml:"showTabRoomSecurity"`
	ShowTabEmailInvitation  bool `json:"showTabEmailInvitation" yaml:"showTabEmailInvitation" toml:"showTabEmailInvitation"`
	ShowCaptionEveryoneBtn  bool `json:"showCaptionEveryoneBtn" yaml:"showCaptionEveryoneBtn" toml:"showCaptionEveryoneBtn"`
	ShowMuteEveryoneBtn     bool `json:"showMuteEveryoneBtn" yaml:"showMuteEveryoneBtn" toml:"showMuteEveryoneBtn"`
	ShowHideEveryoneBtn     bool `json:"showHideEveryoneBtn" yaml:"showHideEveryoneBtn" toml:"showHideEveryoneBtn"`
	ShowEjectEveryoneBtn    bool `json:"showEjectEveryoneBtn" yaml:"showEjectEveryoneBtn" toml:"showEjectEveryoneBtn"`
	ShowLockRoomBtn         bool `json:"showLockRoomBtn" yaml:"showLockRoomBtn" toml:"showLockRoomBtn"`
	ShowUnlockRoomBtn       bool `json:"showUnlockRoomBtn" yaml:"showUnlockRoomBtn" toml:"showUnlockRoomBtn"`
	ShowShortcutsBtn        bool `json:"showShortcutsBtn" yaml:"showShortcutsBtn" toml:"showShortcutsBtn"`
}

// RemoteButtons controls the overlay of every remote participant's tile.
type RemoteButtons struct {
	ShowAudioVolume        bool `json:"showAudioVolume" yaml:"showAudioVolume" toml:"showAudioVolume"`
	AudioBtnClickAllowed   bool `json:"audioBtnClickAllowed" yaml:"audioBtnClickAllowed" toml:"audioBtnClickAllowed"`
	VideoBtnClickAllowed   bool `json:"videoBtnClickAllowed" yaml:"videoBtnClickAllowed" toml:"videoBtnClickAllowed"`
	ShowVideoPipBtn        bool `json:"showVideoPipBtn" yaml:"showVideoPipBtn" toml:"showVideoPipBtn"`
	ShowKickOutBtn         bool `json:"showKickOutBtn" yaml:"showKickOutBtn" toml:"showKickOutBtn"`
	ShowSnapShotBtn        bool `json:"showSnapShotBtn" yaml:"showSnapShotBtn" toml:"showSnapShotBtn"`
	ShowFileShareBtn       bool `json:"showFileShareBtn" yaml:"showFileShareBtn" toml:"showFileShareBtn"`
	ShowShareVideoAudioBtn bool `json:"showShareVideoAudioBtn" yaml:"showShareVideoAudioBtn" toml:"showShareVideoAudioBtn"`
	ShowPrivateMessageBtn  bool `json:"showPrivateMessageBtn" yaml:"showPrivateMessageBtn" toml:"showPrivateMessageBtn"`
	ShowZoomInOutBtn       bool `json:"showZoomInOutBtn" yaml:"showZoomInOutBtn" toml:"showZoomInOutBtn"`
	ShowVideoFocusBtn      bool `json:"showVideoFocusBtn" yaml:"showVideoFocusBtn" toml:"showVideoFocusBtn"`
}

// LocalButtons controls the local preview tile.
type LocalButtons struct {
	ShowVideoPipBtn    bool `json:"showVideoPipBtn" yaml:"showVideoPipBtn" toml:"showVideoPipBtn"`
	ShowSnapShotBtn    bool `json:"showSnapShotBtn" yaml:"showSnapShotBtn" toml:"showSnapShotBtn"`
	ShowVideoCircleBtn bool `json:"showVideoCircleBtn" yaml:"showVideoCircleBtn" toml:"showVideoCircleBtn"`
	ShowZoomInOutBtn   bool `json:"showZoomInOutBtn" yaml:"showZoomInOutBtn" toml:"showZoomInOutBtn"`
}

// WhiteboardButtons controls the whiteboard toolbar.
type WhiteboardButtons struct {
	WhiteboardLockBtn bool `json:"whiteboardLockBtn" yaml:"whiteboardLockBtn" toml:"whiteboardLockBtn"`
}
