package config

// Defaults returns the built-in configuration. It is total and valid on its
// own; every call returns a fresh copy.
func Defaults() AppConfig {
	return AppConfig{
		Brand: BrandConfig{
			App: BrandApp{
				Language:        "en",
				Name:            "Connectly",
				Title:           "<h1>Connectly</h1>Free browser based Real-time video calls.<br />Simple, Secure, Fast.",
				Description:     "Begin your next video call with just one click. No downloads, plug-ins, or logins needed. Jump right into talking, messaging, and screen sharing.",
				JoinDescription: "Choose a room name.<br />How about this one?",
				JoinButtonLabel: "JOIN ROOM",
				JoinLastLabel:   "Your recent room:",
			},
			OG: OpenGraph{
				Type:        "app-webrtc",
				SiteName:    "Connectly",
				Title:       "Click the link to start a call.",
				Description: "Connectly calling offers real-time HD quality and low latency, a step up from traditional tech.",
				Image:       "https://p2p.Connectly.com/images/preview.png",
				URL:         "https://p2p.Connectly.com",
			},
			Site: Site{
				ShortcutIcon:           "../images/logo.svg",
				AppleTouchIcon:         "../images/logo.svg",
				LandingTitle:           "Connectly: Free Secure Video Calls, Chat & Screen Sharing.",
				NewCallTitle:           "Connectly: Free Secure Video Calls, Chat & Screen Sharing.",
				NewCallRoomTitle:       "Choose a name. <br />Share the URL. <br />Begin your conference.",
				NewCallRoomDescription: "Every room gets a unique, disposable URL. Simply choose a room name, share your custom link, and you're set. It's that simple.",
				LoginTitle:             "Connectly - Host Protected Login Required.",
				ClientTitle:            "Connectly WebRTC: Video Calls, Chat Rooms & Screen Sharing.",
				PrivacyPolicyTitle:     "Connectly - Privacy and Policy.",
				StunTurnTitle:          "Test Stun/Turn Servers.",
				NotFoundTitle:          "Connectly - 404 Page Not Found.",
			},
			HTML: HTMLSections{
				Features:    true,
				Browsers:    true,
				Teams:       true,
				TryEasier:   true,
				PoweredBy:   true,
				Sponsors:    false,
				Advertisers: true,
				Footer:      false,
			},
		},
		Buttons: ButtonsConfig{
			// showScreenBtn and showDocumentPipBtn are still subject to
			// browser capability detection on the client.
			Main: MainButtons{
				ShowShareQr:            true,
				ShowShareRoomBtn:       true,
				ShowHideMeBtn:          true,
				ShowAudioBtn:           true,
				ShowVideoBtn:           true,
				ShowScreenBtn:          true,
				ShowRecordStreamBtn:    true,
				ShowChatRoomBtn:        true,
				ShowCaptionRoomBtn:     true,
				ShowRoomEmojiPickerBtn: true,
				ShowMyHandBtn:          true,
				ShowWhiteboardBtn:      true,
				ShowSnapshotRoomBtn:    true,
				ShowFileShareBtn:       true,
				ShowDocumentPipBtn:     true,
				ShowMySettingsBtn:      true,
				ShowAboutBtn:           true,
			},
			Chat: ChatButtons{
				ShowTogglePinBtn:       true,
				ShowMaxBtn:             true,
				ShowSaveMessageBtn:     true,
				ShowMarkDownBtn:        true,
				ShowChatGPTBtn:         true,
				ShowFileShareBtn:       true,
				ShowShareVideoAudioBtn: true,
				ShowParticipantsBtn:    true,
			},
			Caption: CaptionButtons{
				ShowTogglePinBtn: true,
				ShowMaxBtn:       true,
			},
			Settings: SettingsButtons{
				ShowMicOptionsBtn:       true,
				ShowTabRoomPeerName:     true,
				ShowTabRoomParticipants: true,
				ShowTabRoomSecurity:     true,
				ShowTabEmailInvitation:  true,
				ShowCaptionEveryoneBtn:  true,
				ShowMuteEveryoneBtn:     true,
				ShowHideEveryoneBtn:     true,
				ShowEjectEveryoneBtn:    true,
				ShowLockRoomBtn:         true,
				ShowUnlockRoomBtn:       true,
				ShowShortcutsBtn:        true,
			},
			Remote: RemoteButtons{
				ShowAudioVolume:        true,
				AudioBtnClickAllowed:   true,
				VideoBtnClickAllowed:   true,
				ShowVideoPipBtn:        true,
				ShowKickOutBtn:         true,
				ShowSnapShotBtn:        true,
				ShowFileShareBtn:       true,
				ShowShareVideoAudioBtn: true,
				ShowPrivateMessageBtn:  true,
				ShowZoomInOutBtn:       false,
				ShowVideoFocusBtn:      true,
			},
			Local: LocalButtons{
				ShowVideoPipBtn:    true,
				ShowSnapShotBtn:    true,
				ShowVideoCircleBtn: true,
				ShowZoomInOutBtn:   false,
			},
			Whiteboard: WhiteboardButtons{
				WhiteboardLockBtn: false,
			},
		},
	}
}
