package config

// PartialAppConfig is an override: the same tree as [AppConfig] with pointer
// leaves. A nil leaf means "not supplied" and keeps the default.
//
// Struct tags:
//   - json      — document key used by file, remote and --set overrides.
//   - envPrefix — prefix of the nested group in environment variable names.
//   - env       — environment variable suffix of a leaf. Full names are
//     [EnvPrefix] + group prefixes + env, e.g. CONNECTLY_BUTTONS_CHAT_SHOW_MAX_BTN.
type PartialAppConfig struct {
	Brand   PartialBrandConfig   `json:"brand" envPrefix:"BRAND_"`
	Buttons PartialButtonsConfig `json:"buttons" envPrefix:"BUTTONS_"`
}

type PartialBrandConfig struct {
	App  PartialBrandApp     `json:"app" envPrefix:"APP_"`
	OG   PartialOpenGraph    `json:"og" envPrefix:"OG_"`
	Site PartialSite         `json:"site" envPrefix:"SITE_"`
	HTML PartialHTMLSections `json:"html" envPrefix:"HTML_"`
}

type PartialBrandApp struct {
	Language        *string `json:"language" env:"LANGUAGE"`
	Name            *string `json:"name" env:"NAME"`
	Title           *string `json:"title" env:"TITLE"`
	Description     *string `json:"description" env:"DESCRIPTION"`
	JoinDescription *string `json:"joinDescription" env:"JOIN_DESCRIPTION"`
	JoinButtonLabel *string `json:"joinButtonLabel" env:"JOIN_BUTTON_LABEL"`
	JoinLastLabel   *string `json:"joinLastLabel" env:"JOIN_LAST_LABEL"`
}

type PartialOpenGraph struct {
	Type        *string `json:"type" env:"TYPE"`
	SiteName    *string `json:"siteName" env:"SITE_NAME"`
	Title       *string `json:"title" env:"TITLE"`
	Description *string `json:"description" env:"DESCRIPTION"`
	Image       *string `json:"image" env:"IMAGE"`
	URL         *string `json:"url" env:"URL"`
}

type PartialSite struct {
	ShortcutIcon           *string `json:"shortcutIcon" env:"SHORTCUT_ICON"`
	AppleTouchIcon         *string `json:"appleTouchIcon" env:"APPLE_TOUCH_ICON"`
	LandingTitle           *string `json:"landingTitle" env:"LANDING_TITLE"`
	NewCallTitle           *string `json:"newCallTitle" env:"NEW_CALL_TITLE"`
	NewCallRoomTitle       *string `json:"newCallRoomTitle" env:"NEW_CALL_ROOM_TITLE"`
	NewCallRoomDescription *string `json:"newCallRoomDescription" env:"NEW_CALL_ROOM_DESCRIPTION"`
	LoginTitle             *string `json:"loginTitle" env:"LOGIN_TITLE"`
	ClientTitle            *string `json:"clientTitle" env:"CLIENT_TITLE"`
	PrivacyPolicyTitle     *string `json:"privacyPolicyTitle" env:"PRIVACY_POLICY_TITLE"`
	StunTurnTitle          *string `json:"stunTurnTitle" env:"STUN_TURN_TITLE"`
	NotFoundTitle          *string `json:"notFoundTitle" env:"NOT_FOUND_TITLE"`
}

type PartialHTMLSections struct {
	Features    *bool `json:"features" env:"FEATURES"`
	Browsers    *bool `json:"browsers" env:"BROWSERS"`
	Teams       *bool `json:"teams" env:"TEAMS"`
	TryEasier   *bool `json:"tryEasier" env:"TRY_EASIER"`
	PoweredBy   *bool `json:"poweredBy" env:"POWERED_BY"`
	Sponsors    *bool `json:"sponsors" env:"SPONSORS"`
	Advertisers *bool `json:"advertisers" env:"ADVERTISERS"`
	Footer      *bool `json:"footer" env:"FOOTER"`
}

type PartialButtonsConfig struct {
	Main       PartialMainButtons       `json:"main" envPrefix:"MAIN_"`
	Chat       PartialChatButtons       `json:"chat" envPrefix:"CHAT_"`
	Caption    PartialCaptionButtons    `json:"caption" envPrefix:"CAPTION_"`
	Settings   PartialSettingsButtons   `json:"settings" envPrefix:"SETTINGS_"`
	Remote     PartialRemoteButtons     `json:"remote" envPrefix:"REMOTE_"`
	Local      PartialLocalButtons      `json:"local" envPrefix:"LOCAL_"`
	Whiteboard PartialWhiteboardButtons `json:"whiteboard" envPrefix:"WHITEBOARD_"`
}

type PartialMainButtons struct {
	ShowShareQr            *bool `json:"showShareQr" env:"SHOW_SHARE_QR"`
	ShowShareRoomBtn       *bool `json:"showShareRoomBtn" env:"SHOW_SHARE_ROOM_BTN"`
	ShowHideMeBtn          *bool `json:"showHideMeBtn" env:"SHOW_HIDE_ME_BTN"`
	ShowAudioBtn           *bool `json:"showAudioBtn" env:"SHOW_AUDIO_BTN"`
	ShowVideoBtn           *bool `json:"showVideoBtn" env:"SHOW_VIDEO_BTN"`
	ShowScreenBtn          *bool `json:"showScreenBtn" env:"SHOW_SCREEN_BTN"`
	ShowRecordStreamBtn    *bool `json:"showRecordStreamBtn" env:"SHOW_RECORD_STREAM_BTN"`
	ShowChatRoomBtn        *bool `json:"showChatRoomBtn" env:"SHOW_CHAT_ROOM_BTN"`
	ShowCaptionRoomBtn     *bool `json:"showCaptionRoomBtn" env:"SHOW_CAPTION_ROOM_BTN"`
	ShowRoomEmojiPickerBtn *bool `json:"showRoomEmojiPickerBtn" env:"SHOW_ROOM_EMOJI_PICKER_BTN"`
	ShowMyHandBtn          *bool `json:"showMyHandBtn" env:"SHOW_MY_HAND_BTN"`
	ShowWhiteboardBtn      *bool `json:"showWhiteboardBtn" env:"SHOW_WHITEBOARD_BTN"`
	ShowSnapshotRoomBtn    *bool `json:"showSnapshotRoomBtn" env:"SHOW_SNAPSHOT_ROOM_BTN"`
	ShowFileShareBtn       *bool `json:"showFileShareBtn" env:"SHOW_FILE_SHARE_BTN"`
	ShowDocumentPipBtn     *bool `json:"showDocumentPipBtn" env:"SHOW_DOCUMENT_PIP_BTN"`
	ShowMySettingsBtn      *bool `json:"showMySettingsBtn" env:"SHOW_MY_SETTINGS_BTN"`
	ShowAboutBtn           *bool `json:"showAboutBtn" env:"SHOW_ABOUT_BTN"`
}

type PartialChatButtons struct {
	ShowTogglePinBtn       *bool `json:"showTogglePinBtn" env:"SHOW_TOGGLE_PIN_BTN"`
	ShowMaxBtn             *bool `json:"showMaxBtn" env:"SHOW_MAX_BTN"`
	ShowSaveMessageBtn     *bool `json:"showSaveMessageBtn" env:"SHOW_SAVE_MESSAGE_BTN"`
	ShowMarkDownBtn        *bool `json:"showMarkDownBtn" env:"SHOW_MARK_DOWN_BTN"`
	ShowChatGPTBtn         *bool `json:"showChatGPTBtn" env:"SHOW_CHAT_GPT_BTN"`
	ShowFileShareBtn       *bool `json:"showFileShareBtn" env:"SHOW_FILE_SHARE_BTN"`
	ShowShareVideoAudioBtn *bool `json:"showShareVideoAudioBtn" env:"SHOW_SHARE_VIDEO_AUDIO_BTN"`
	ShowParticipantsBtn    *bool `json:"showParticipantsBtn" env:"SHOW_PARTICIPANTS_BTN"`
}

type PartialCaptionButtons struct {
	ShowTogglePinBtn *bool `json:"showTogglePinBtn" env:"SHOW_TOGGLE_PIN_BTN"`
	ShowMaxBtn       *bool `json:"showMaxBtn" env:"SHOW_MAX_BTN"`
}

type PartialSettingsButtons struct {
	ShowMicOptionsBtn       *bool `json:"showMicOptionsBtn" env:"SHOW_MIC_OPTIONS_BTN"`
	ShowTabRoomPeerName     *bool `json:"showTabRoomPeerName" env:"SHOW_TAB_ROOM_PEER_NAME"`
	ShowTabRoomParticipants *bool `json:"showTabRoomParticipants" env:"SHOW_TAB_ROOM_PARTICIPANTS"`
	ShowTabRoomSecurity     *bool `json:"showTabRoomSecurity" env:"SHOW_TAB_ROOM_SECURITY"`
	ShowTabEmailInvitation  *bool `json:"showTabEmailInvitation" env:"SHOW_TAB_EMAIL_INVITATION"`
	ShowCaptionEveryoneBtn  *bool `json:"showCaptionEveryoneBtn" env:"SHOW_CAPTION_EVERYONE_BTN"`
	ShowMuteEveryoneBtn     *bool `json:"showMuteEveryoneBtn" env:"SHOW_MUTE_EVERYONE_BTN"`
	ShowHideEveryoneBtn     *bool `json:"showHideEveryoneBtn" env:"SHOW_HIDE_EVERYONE_BTN"`
	ShowEjectEveryoneBtn    *bool `json:"showEjectEveryoneBtn" env:"SHOW_EJECT_EVERYONE_BTN"`
	ShowLockRoomBtn         *bool `json:"showLockRoomBtn" env:"SHOW_LOCK_ROOM_BTN"`
	ShowUnlockRoomBtn       *bool `json:"showUnlockRoomBtn" env:"SHOW_UNLOCK_ROOM_BTN"`
	ShowShortcutsBtn        *bool `json:"showShortcutsBtn" env:"SHOW_SHORTCUTS_BTN"`
}

type PartialRemoteButtons struct {
	ShowAudioVolume        *bool `json:"showAudioVolume" env:"SHOW_AUDIO_VOLUME"`
	AudioBtnClickAllowed   *bool `json:"audioBtnClickAllowed" env:"AUDIO_BTN_CLICK_ALLOWED"`
	VideoBtnClickAllowed   *bool `json:"videoBtnClickAllowed" env:"VIDEO_BTN_CLICK_ALLOWED"`
	ShowVideoPipBtn        *bool `json:"showVideoPipBtn" env:"SHOW_VIDEO_PIP_BTN"`
	ShowKickOutBtn         *bool `json:"showKickOutBtn" env:"SHOW_KICK_OUT_BTN"`
	ShowSnapShotBtn        *bool `json:"showSnapShotBtn" env:"SHOW_SNAP_SHOT_BTN"`
	ShowFileShareBtn       *bool `json:"showFileShareBtn" env:"SHOW_FILE_SHARE_BTN"`
	ShowShareVideoAudioBtn *bool `json:"showShareVideoAudioBtn" env:"SHOW_SHARE_VIDEO_AUDIO_BTN"`
	ShowPrivateMessageBtn  *bool `json:"showPrivateMessageBtn" env:"SHOW_PRIVATE_MESSAGE_BTN"`
	ShowZoomInOutBtn       *bool `json:"showZoomInOutBtn" env:"SHOW_ZOOM_IN_OUT_BTN"`
	ShowVideoFocusBtn      *bool `json:"showVideoFocusBtn" env:"SHOW_VIDEO_FOCUS_BTN"`
}

type PartialLocalButtons struct {
	ShowVideoPipBtn    *bool `json:"showVideoPipBtn" env:"SHOW_VIDEO_PIP_BTN"`
	ShowSnapShotBtn    *bool `json:"showSnapShotBtn" env:"SHOW_SNAP_SHOT_BTN"`
	ShowVideoCircleBtn *bool `json:"showVideoCircleBtn" env:"SHOW_VIDEO_CIRCLE_BTN"`
	ShowZoomInOutBtn   *bool `json:"showZoomInOutBtn" env:"SHOW_ZOOM_IN_OUT_BTN"`
}

type PartialWhiteboardButtons struct {
	WhiteboardLockBtn *bool `json:"whiteboardLockBtn" env:"WHITEBOARD_LOCK_BTN"`
}

// String returns a pointer to s, for building overrides in code.
func String(s string) *string { return &s }

// Bool returns a pointer to b, for building overrides in code.
func Bool(b bool) *bool { return &b }
