package catalog

// Request opcodes
const (
	RequestGetSIMStatus                       int32 = 1
	RequestEnterSIMPIN                        int32 = 2
	RequestEnterSIMPUK                        int32 = 3
	RequestEnterSIMPIN2                       int32 = 4
	RequestEnterSIMPUK2                       int32 = 5
	RequestChangeSIMPIN                       int32 = 6
	RequestChangeSIMPIN2                      int32 = 7
	RequestEnterNetworkDepersonalization      int32 = 8
	RequestGetCurrentCalls                    int32 = 9
	RequestDial                               int32 = 10
	RequestGetIMSI                            int32 = 11
	RequestHangup                             int32 = 12
	RequestHangupWaitingOrBackground          int32 = 13
	RequestHangupForegroundResumeBackground   int32 = 14
	RequestSwitchWaitingOrHoldingAndActive    int32 = 15
	RequestConference                         int32 = 16
	RequestUDUB                               int32 = 17
	RequestLastCallFailCause                  int32 = 18
	RequestSignalStrength                     int32 = 19
	RequestVoiceRegistrationState             int32 = 20
	RequestDataRegistrationState              int32 = 21
	RequestOperator                           int32 = 22
	RequestRadioPower                         int32 = 23
	RequestDTMF                               int32 = 24
	RequestSendSMS                            int32 = 25
	RequestSendSMSExpectMore                  int32 = 26
	RequestSetupDataCall                      int32 = 27
	RequestSIMIo                              int32 = 28
	RequestSendUSSD                           int32 = 29
	RequestCancelUSSD                         int32 = 30
	RequestGetCLIR                            int32 = 31
	RequestSetCLIR                            int32 = 32
	RequestQueryCallForwardStatus             int32 = 33
	RequestSetCallForward                     int32 = 34
	RequestQueryCallWaiting                   int32 = 35
	RequestSetCallWaiting                     int32 = 36
	RequestSMSAcknowledge                     int32 = 37
	RequestGetIMEI                            int32 = 38
	RequestGetIMEISV                          int32 = 39
	RequestAnswer                             int32 = 40
	RequestDeactivateDataCall                 int32 = 41
	RequestQueryFacilityLock                  int32 = 42
	RequestSetFacilityLock                    int32 = 43
	RequestChangeBarringPassword              int32 = 44
	RequestQueryNetworkSelectionMode          int32 = 45
	RequestSetNetworkSelectionAutomatic       int32 = 46
	RequestSetNetworkSelectionManual          int32 = 47
	RequestQueryAvailableNetworks             int32 = 48
	RequestDTMFStart                          int32 = 49
	RequestDTMFStop                           int32 = 50
	RequestBasebandVersion                    int32 = 51
	RequestSeparateConnection                 int32 = 52
	RequestSetMute                            int32 = 53
	RequestGetMute                            int32 = 54
	RequestQueryCLIP                          int32 = 55
	RequestLastDataCallFailCause              int32 = 56
	RequestDataCallList                       int32 = 57
	RequestResetRadio                         int32 = 58
	RequestOEMHookRaw                         int32 = 59
	RequestOEMHookStrings                     int32 = 60
	RequestScreenState                        int32 = 61
	RequestSetSuppSvcNotification             int32 = 62
	RequestWriteSMSToSIM                      int32 = 63
	RequestDeleteSMSOnSIM                     int32 = 64
	RequestSetBandMode                        int32 = 65
	RequestQueryAvailableBandMode             int32 = 66
	RequestSTKGetProfile                      int32 = 67
	RequestSTKSetProfile                      int32 = 68
	RequestSTKSendEnvelopeCommand             int32 = 69
	RequestSTKSendTerminalResponse            int32 = 70
	RequestSTKHandleCallSetupRequestedFromSIM int32 = 71
	RequestExplicitCallTransfer               int32 = 72
	RequestSetPreferredNetworkType            int32 = 73
	RequestGetPreferredNetworkType            int32 = 74
	RequestGetNeighboringCellIds              int32 = 75
	RequestSetLocationUpdates                 int32 = 76
	RequestCDMASetSubscriptionSource          int32 = 77
	RequestCDMASetRoamingPreference           int32 = 78
	RequestCDMAQueryRoamingPreference         int32 = 79
	RequestSetTTYMode                         int32 = 80
	RequestQueryTTYMode                       int32 = 81
	RequestCDMASetPreferredVoicePrivacyMode   int32 = 82
	RequestCDMAQueryPreferredVoicePrivacyMode int32 = 83
	RequestCDMAFlash                          int32 = 84
	RequestCDMABurstDTMF                      int32 = 85
	RequestCDMAValidateAndWriteAKey           int32 = 86
	RequestCDMASendSMS                        int32 = 87
	RequestCDMASMSAcknowledge                 int32 = 88
	RequestGSMGetBroadcastConfig              int32 = 89
	RequestGSMSetBroadcastConfig              int32 = 90
	RequestGSMBroadcastActivation             int32 = 91
	RequestCDMAGetBroadcastConfig             int32 = 92
	RequestCDMASetBroadcastConfig             int32 = 93
	RequestCDMABroadcastActivation            int32 = 94
	RequestCDMASubscription                   int32 = 95
	RequestCDMAWriteSMSToRUIM                 int32 = 96
	RequestCDMADeleteSMSOnRUIM                int32 = 97
	RequestDeviceIdentity                     int32 = 98
	RequestExitEmergencyCallbackMode          int32 = 99
	RequestGetSMSCAddress                     int32 = 100
	RequestSetSMSCAddress                     int32 = 101
	RequestReportSMSMemoryStatus              int32 = 102
	RequestReportSTKServiceIsRunning          int32 = 103
	RequestCDMAGetSubscriptionSource          int32 = 104
	RequestISIMAuthentication                 int32 = 105
	RequestAcknowledgeIncomingGSMSMSWithPDU   int32 = 106
	RequestSTKSendEnvelopeWithStatus          int32 = 107
	RequestVoiceRadioTech                     int32 = 108
	RequestGetCellInfoList                    int32 = 109
	RequestSetUnsolCellInfoListRate           int32 = 110
	RequestSetInitialAttachAPN                int32 = 111
	RequestIMSRegistrationState               int32 = 112
	RequestIMSSendSMS                         int32 = 113
	RequestSIMTransmitAPDUBasic               int32 = 114
	RequestSIMOpenChannel                     int32 = 115
	RequestSIMCloseChannel                    int32 = 116
	RequestSIMTransmitAPDUChannel             int32 = 117
	RequestNVReadItem                         int32 = 118
	RequestNVWriteItem                        int32 = 119
	RequestNVWriteCDMAPRL                     int32 = 120
	RequestNVResetConfig                      int32 = 121
	RequestSetUICCSubscription                int32 = 122
	RequestAllowData                          int32 = 123
	RequestGetHardwareConfig                  int32 = 124
	RequestSIMAuthentication                  int32 = 125
	RequestGetDCRTInfo                        int32 = 126
	RequestSetDCRTInfoRate                    int32 = 127
	RequestSetDataProfile                     int32 = 128
	RequestShutdown                           int32 = 129
	RequestGetRadioCapability                 int32 = 130
	RequestSetRadioCapability                 int32 = 131
	RequestStartLCE                           int32 = 132
	RequestStopLCE                            int32 = 133
	RequestPullLCEData                        int32 = 134
	RequestGetActivityInfo                    int32 = 135
	RequestSetAllowedCarriers                 int32 = 136
	RequestGetAllowedCarriers                 int32 = 137
	RequestSendDeviceState                    int32 = 138
	RequestSetUnsolicitedResponseFilter       int32 = 139
	RequestSetSIMCardPower                    int32 = 140
	RequestSetCarrierInfoIMSIEncryption       int32 = 141
	RequestStartNetworkScan                   int32 = 142
	RequestStopNetworkScan                    int32 = 143
	RequestStartKeepalive                     int32 = 144
	RequestStopKeepalive                      int32 = 145
)

// ResponseAcknowledgement is the ack sent for unsolicited responses that require one
const ResponseAcknowledgement int32 = 800

// Unsolicited opcodes
const (
	UnsolRadioStateChanged                 int32 = 1000
	UnsolCallStateChanged                  int32 = 1001
	UnsolNetworkStateChanged               int32 = 1002
	UnsolNewSMS                            int32 = 1003
	UnsolNewSMSStatusReport                int32 = 1004
	UnsolNewSMSOnSIM                       int32 = 1005
	UnsolOnUSSD                            int32 = 1006
	UnsolOnUSSDRequest                     int32 = 1007
	UnsolNITZTimeReceived                  int32 = 1008
	UnsolSignalStrength                    int32 = 1009
	UnsolDataCallListChanged               int32 = 1010
	UnsolSuppSvcNotification               int32 = 1011
	UnsolSTKSessionEnd                     int32 = 1012
	UnsolSTKProactiveCommand               int32 = 1013
	UnsolSTKEventNotify                    int32 = 1014
	UnsolSTKCallSetup                      int32 = 1015
	UnsolSIMSMSStorageFull                 int32 = 1016
	UnsolSIMRefresh                        int32 = 1017
	UnsolCallRing                          int32 = 1018
	UnsolSIMStatusChanged                  int32 = 1019
	UnsolCDMANewSMS                        int32 = 1020
	UnsolNewBroadcastSMS                   int32 = 1021
	UnsolCDMARUIMSMSStorageFull            int32 = 1022
	UnsolRestrictedStateChanged            int32 = 1023
	UnsolEnterEmergencyCallbackMode        int32 = 1024
	UnsolCDMACallWaiting                   int32 = 1025
	UnsolCDMAOTAProvisionStatus            int32 = 1026
	UnsolCDMAInfoRec                       int32 = 1027
	UnsolOEMHookRaw                        int32 = 1028
	UnsolRingbackTone                      int32 = 1029
	UnsolResendIncallMute                  int32 = 1030
	UnsolCDMASubscriptionSourceChanged     int32 = 1031
	UnsolCDMAPRLChanged                    int32 = 1032
	UnsolExitEmergencyCallbackMode         int32 = 1033
	UnsolRILConnected                      int32 = 1034
	UnsolVoiceRadioTechChanged             int32 = 1035
	UnsolCellInfoList                      int32 = 1036
	UnsolIMSNetworkStateChanged            int32 = 1037
	UnsolUICCSubscriptionStatusChanged     int32 = 1038
	UnsolSRVCCStateNotify                  int32 = 1039
	UnsolHardwareConfigChanged             int32 = 1040
	UnsolDCRTInfoChanged                   int32 = 1041
	UnsolRadioCapability                   int32 = 1042
	UnsolOnSS                              int32 = 1043
	UnsolSTKCCAlphaNotify                  int32 = 1044
	UnsolLCEDataRecv                       int32 = 1045
	UnsolPCOData                           int32 = 1046
	UnsolModemRestart                      int32 = 1047
	UnsolCarrierInfoIMSIEncryption         int32 = 1048
	UnsolNetworkScanResult                 int32 = 1049
	UnsolKeepaliveStatus                   int32 = 1050
	UnsolPhysicalChannelConfig             int32 = 1051
	UnsolEmergencyNumberList               int32 = 1052
	UnsolUICCApplicationsEnablementChanged int32 = 1053
	UnsolRegistrationFailed                int32 = 1054
	UnsolBarringInfoChanged                int32 = 1055
	UnsolICCSlotStatus                     int32 = 1100
)

var requestNames = map[int32]string{
	RequestGetSIMStatus:                       "GET_SIM_STATUS",
	RequestEnterSIMPIN:                        "ENTER_SIM_PIN",
	RequestEnterSIMPUK:                        "ENTER_SIM_PUK",
	RequestEnterSIMPIN2:                       "ENTER_SIM_PIN2",
	RequestEnterSIMPUK2:                       "ENTER_SIM_PUK2",
	RequestChangeSIMPIN:                       "CHANGE_SIM_PIN",
	RequestChangeSIMPIN2:                      "CHANGE_SIM_PIN2",
	RequestEnterNetworkDepersonalization:      "ENTER_NETWORK_DEPERSONALIZATION",
	RequestGetCurrentCalls:                    "GET_CURRENT_CALLS",
	RequestDial:                               "DIAL",
	RequestGetIMSI:                            "GET_IMSI",
	RequestHangup:                             "HANGUP",
	RequestHangupWaitingOrBackground:          "HANGUP_WAITING_OR_BACKGROUND",
	RequestHangupForegroundResumeBackground:   "HANGUP_FOREGROUND_RESUME_BACKGROUND",
	RequestSwitchWaitingOrHoldingAndActive:    "SWITCH_WAITING_OR_HOLDING_AND_ACTIVE",
	RequestConference:                         "CONFERENCE",
	RequestUDUB:                               "UDUB",
	RequestLastCallFailCause:                  "LAST_CALL_FAIL_CAUSE",
	RequestSignalStrength:                     "SIGNAL_STRENGTH",
	RequestVoiceRegistrationState:             "VOICE_REGISTRATION_STATE",
	RequestDataRegistrationState:              "DATA_REGISTRATION_STATE",
	RequestOperator:                           "OPERATOR",
	RequestRadioPower:                         "RADIO_POWER",
	RequestDTMF:                               "DTMF",
	RequestSendSMS:                            "SEND_SMS",
	RequestSendSMSExpectMore:                  "SEND_SMS_EXPECT_MORE",
	RequestSetupDataCall:                      "SETUP_DATA_CALL",
	RequestSIMIo:                              "SIM_IO",
	RequestSendUSSD:                           "SEND_USSD",
	RequestCancelUSSD:                         "CANCEL_USSD",
	RequestGetCLIR:                            "GET_CLIR",
	RequestSetCLIR:                            "SET_CLIR",
	RequestQueryCallForwardStatus:             "QUERY_CALL_FORWARD_STATUS",
	RequestSetCallForward:                     "SET_CALL_FORWARD",
	RequestQueryCallWaiting:                   "QUERY_CALL_WAITING",
	RequestSetCallWaiting:                     "SET_CALL_WAITING",
	RequestSMSAcknowledge:                     "SMS_ACKNOWLEDGE",
	RequestGetIMEI:                            "GET_IMEI",
	RequestGetIMEISV:                          "GET_IMEISV",
	RequestAnswer:                             "ANSWER",
	RequestDeactivateDataCall:                 "DEACTIVATE_DATA_CALL",
	RequestQueryFacilityLock:                  "QUERY_FACILITY_LOCK",
	RequestSetFacilityLock:                    "SET_FACILITY_LOCK",
	RequestChangeBarringPassword:              "CHANGE_BARRING_PASSWORD",
	RequestQueryNetworkSelectionMode:          "QUERY_NETWORK_SELECTION_MODE",
	RequestSetNetworkSelectionAutomatic:       "SET_NETWORK_SELECTION_AUTOMATIC",
	RequestSetNetworkSelectionManual:          "SET_NETWORK_SELECTION_MANUAL",
	RequestQueryAvailableNetworks:             "QUERY_AVAILABLE_NETWORKS",
	RequestDTMFStart:                          "DTMF_START",
	RequestDTMFStop:                           "DTMF_STOP",
	RequestBasebandVersion:                    "BASEBAND_VERSION",
	RequestSeparateConnection:                 "SEPARATE_CONNECTION",
	RequestSetMute:                            "SET_MUTE",
	RequestGetMute:                            "GET_MUTE",
	RequestQueryCLIP:                          "QUERY_CLIP",
	RequestLastDataCallFailCause:              "LAST_DATA_CALL_FAIL_CAUSE",
	RequestDataCallList:                       "DATA_CALL_LIST",
	RequestResetRadio:                         "RESET_RADIO",
	RequestOEMHookRaw:                         "OEM_HOOK_RAW",
	RequestOEMHookStrings:                     "OEM_HOOK_STRINGS",
	RequestScreenState:                        "SCREEN_STATE",
	RequestSetSuppSvcNotification:             "SET_SUPP_SVC_NOTIFICATION",
	RequestWriteSMSToSIM:                      "WRITE_SMS_TO_SIM",
	RequestDeleteSMSOnSIM:                     "DELETE_SMS_ON_SIM",
	RequestSetBandMode:                        "SET_BAND_MODE",
	RequestQueryAvailableBandMode:             "QUERY_AVAILABLE_BAND_MODE",
	RequestSTKGetProfile:                      "STK_GET_PROFILE",
	RequestSTKSetProfile:                      "STK_SET_PROFILE",
	RequestSTKSendEnvelopeCommand:             "STK_SEND_ENVELOPE_COMMAND",
	RequestSTKSendTerminalResponse:            "STK_SEND_TERMINAL_RESPONSE",
	RequestSTKHandleCallSetupRequestedFromSIM: "STK_HANDLE_CALL_SETUP_REQUESTED_FROM_SIM",
	RequestExplicitCallTransfer:               "EXPLICIT_CALL_TRANSFER",
	RequestSetPreferredNetworkType:            "SET_PREFERRED_NETWORK_TYPE",
	RequestGetPreferredNetworkType:            "GET_PREFERRED_NETWORK_TYPE",
	RequestGetNeighboringCellIds:              "GET_NEIGHBORING_CELL_IDS",
	RequestSetLocationUpdates:                 "SET_LOCATION_UPDATES",
	RequestCDMASetSubscriptionSource:          "CDMA_SET_SUBSCRIPTION_SOURCE",
	RequestCDMASetRoamingPreference:           "CDMA_SET_ROAMING_PREFERENCE",
	RequestCDMAQueryRoamingPreference:         "CDMA_QUERY_ROAMING_PREFERENCE",
	RequestSetTTYMode:                         "SET_TTY_MODE",
	RequestQueryTTYMode:                       "QUERY_TTY_MODE",
	RequestCDMASetPreferredVoicePrivacyMode:   "CDMA_SET_PREFERRED_VOICE_PRIVACY_MODE",
	RequestCDMAQueryPreferredVoicePrivacyMode: "CDMA_QUERY_PREFERRED_VOICE_PRIVACY_MODE",
	RequestCDMAFlash:                          "CDMA_FLASH",
	RequestCDMABurstDTMF:                      "CDMA_BURST_DTMF",
	RequestCDMAValidateAndWriteAKey:           "CDMA_VALIDATE_AND_WRITE_AKEY",
	RequestCDMASendSMS:                        "CDMA_SEND_SMS",
	RequestCDMASMSAcknowledge:                 "CDMA_SMS_ACKNOWLEDGE",
	RequestGSMGetBroadcastConfig:              "GSM_GET_BROADCAST_CONFIG",
	RequestGSMSetBroadcastConfig:              "GSM_SET_BROADCAST_CONFIG",
	RequestGSMBroadcastActivation:             "GSM_BROADCAST_ACTIVATION",
	RequestCDMAGetBroadcastConfig:             "CDMA_GET_BROADCAST_CONFIG",
	RequestCDMASetBroadcastConfig:             "CDMA_SET_BROADCAST_CONFIG",
	RequestCDMABroadcastActivation:            "CDMA_BROADCAST_ACTIVATION",
	RequestCDMASubscription:                   "CDMA_SUBSCRIPTION",
	RequestCDMAWriteSMSToRUIM:                 "CDMA_WRITE_SMS_TO_RUIM",
	RequestCDMADeleteSMSOnRUIM:                "CDMA_DELETE_SMS_ON_RUIM",
	RequestDeviceIdentity:                     "DEVICE_IDENTITY",
	RequestExitEmergencyCallbackMode:          "EXIT_EMERGENCY_CALLBACK_MODE",
	RequestGetSMSCAddress:                     "GET_SMSC_ADDRESS",
	RequestSetSMSCAddress:                     "SET_SMSC_ADDRESS",
	RequestReportSMSMemoryStatus:              "REPORT_SMS_MEMORY_STATUS",
	RequestReportSTKServiceIsRunning:          "REPORT_STK_SERVICE_IS_RUNNING",
	RequestCDMAGetSubscriptionSource:          "CDMA_GET_SUBSCRIPTION_SOURCE",
	RequestISIMAuthentication:                 "ISIM_AUTHENTICATION",
	RequestAcknowledgeIncomingGSMSMSWithPDU:   "ACKNOWLEDGE_INCOMING_GSM_SMS_WITH_PDU",
	RequestSTKSendEnvelopeWithStatus:          "STK_SEND_ENVELOPE_WITH_STATUS",
	RequestVoiceRadioTech:                     "VOICE_RADIO_TECH",
	RequestGetCellInfoList:                    "GET_CELL_INFO_LIST",
	RequestSetUnsolCellInfoListRate:           "SET_UNSOL_CELL_INFO_LIST_RATE",
	RequestSetInitialAttachAPN:                "SET_INITIAL_ATTACH_APN",
	RequestIMSRegistrationState:               "IMS_REGISTRATION_STATE",
	RequestIMSSendSMS:                         "IMS_SEND_SMS",
	RequestSIMTransmitAPDUBasic:               "SIM_TRANSMIT_APDU_BASIC",
	RequestSIMOpenChannel:                     "SIM_OPEN_CHANNEL",
	RequestSIMCloseChannel:                    "SIM_CLOSE_CHANNEL",
	RequestSIMTransmitAPDUChannel:             "SIM_TRANSMIT_APDU_CHANNEL",
	RequestNVReadItem:                         "NV_READ_ITEM",
	RequestNVWriteItem:                        "NV_WRITE_ITEM",
	RequestNVWriteCDMAPRL:                     "NV_WRITE_CDMA_PRL",
	RequestNVResetConfig:                      "NV_RESET_CONFIG",
	RequestSetUICCSubscription:                "SET_UICC_SUBSCRIPTION",
	RequestAllowData:                          "ALLOW_DATA",
	RequestGetHardwareConfig:                  "GET_HARDWARE_CONFIG",
	RequestSIMAuthentication:                  "SIM_AUTHENTICATION",
	RequestGetDCRTInfo:                        "GET_DC_RT_INFO",
	RequestSetDCRTInfoRate:                    "SET_DC_RT_INFO_RATE",
	RequestSetDataProfile:                     "SET_DATA_PROFILE",
	RequestShutdown:                           "SHUTDOWN",
	RequestGetRadioCapability:                 "GET_RADIO_CAPABILITY",
	RequestSetRadioCapability:                 "SET_RADIO_CAPABILITY",
	RequestStartLCE:                           "START_LCE",
	RequestStopLCE:                            "STOP_LCE",
	RequestPullLCEData:                        "PULL_LCEDATA",
	RequestGetActivityInfo:                    "GET_ACTIVITY_INFO",
	RequestSetAllowedCarriers:                 "SET_ALLOWED_CARRIERS",
	RequestGetAllowedCarriers:                 "GET_ALLOWED_CARRIERS",
	RequestSendDeviceState:                    "SEND_DEVICE_STATE",
	RequestSetUnsolicitedResponseFilter:       "SET_UNSOLICITED_RESPONSE_FILTER",
	RequestSetSIMCardPower:                    "SET_SIM_CARD_POWER",
	RequestSetCarrierInfoIMSIEncryption:       "SET_CARRIER_INFO_IMSI_ENCRYPTION",
	RequestStartNetworkScan:                   "START_NETWORK_SCAN",
	RequestStopNetworkScan:                    "STOP_NETWORK_SCAN",
	RequestStartKeepalive:                     "START_KEEPALIVE",
	RequestStopKeepalive:                      "STOP_KEEPALIVE",
	ResponseAcknowledgement:                   "RIL_RESPONSE_ACKNOWLEDGEMENT",
}

var responseNames = map[int32]string{
	UnsolRadioStateChanged:                 "UNSOL_RESPONSE_RADIO_STATE_CHANGED",
	UnsolCallStateChanged:                  "UNSOL_RESPONSE_CALL_STATE_CHANGED",
	UnsolNetworkStateChanged:               "UNSOL_RESPONSE_NETWORK_STATE_CHANGED",
	UnsolNewSMS:                            "UNSOL_RESPONSE_NEW_SMS",
	UnsolNewSMSStatusReport:                "UNSOL_RESPONSE_NEW_SMS_STATUS_REPORT",
	UnsolNewSMSOnSIM:                       "UNSOL_RESPONSE_NEW_SMS_ON_SIM",
	UnsolOnUSSD:                            "UNSOL_ON_USSD",
	UnsolOnUSSDRequest:                     "UNSOL_ON_USSD_REQUEST",
	UnsolNITZTimeReceived:                  "UNSOL_NITZ_TIME_RECEIVED",
	UnsolSignalStrength:                    "UNSOL_SIGNAL_STRENGTH",
	UnsolDataCallListChanged:               "UNSOL_DATA_CALL_LIST_CHANGED",
	UnsolSuppSvcNotification:               "UNSOL_SUPP_SVC_NOTIFICATION",
	UnsolSTKSessionEnd:                     "UNSOL_STK_SESSION_END",
	UnsolSTKProactiveCommand:               "UNSOL_STK_PROACTIVE_COMMAND",
	UnsolSTKEventNotify:                    "UNSOL_STK_EVENT_NOTIFY",
	UnsolSTKCallSetup:                      "UNSOL_STK_CALL_SETUP",
	UnsolSIMSMSStorageFull:                 "UNSOL_SIM_SMS_STORAGE_FULL",
	UnsolSIMRefresh:                        "UNSOL_SIM_REFRESH",
	UnsolCallRing:                          "UNSOL_CALL_RING",
	UnsolSIMStatusChanged:                  "UNSOL_RESPONSE_SIM_STATUS_CHANGED",
	UnsolCDMANewSMS:                        "UNSOL_RESPONSE_CDMA_NEW_SMS",
	UnsolNewBroadcastSMS:                   "UNSOL_RESPONSE_NEW_BROADCAST_SMS",
	UnsolCDMARUIMSMSStorageFull:            "UNSOL_CDMA_RUIM_SMS_STORAGE_FULL",
	UnsolRestrictedStateChanged:            "UNSOL_RESTRICTED_STATE_CHANGED",
	UnsolEnterEmergencyCallbackMode:        "UNSOL_ENTER_EMERGENCY_CALLBACK_MODE",
	UnsolCDMACallWaiting:                   "UNSOL_CDMA_CALL_WAITING",
	UnsolCDMAOTAProvisionStatus:            "UNSOL_CDMA_OTA_PROVISION_STATUS",
	UnsolCDMAInfoRec:                       "UNSOL_CDMA_INFO_REC",
	UnsolOEMHookRaw:                        "UNSOL_OEM_HOOK_RAW",
	UnsolRingbackTone:                      "UNSOL_RINGBACK_TONE",
	UnsolResendIncallMute:                  "UNSOL_RESEND_INCALL_MUTE",
	UnsolCDMASubscriptionSourceChanged:     "UNSOL_CDMA_SUBSCRIPTION_SOURCE_CHANGED",
	UnsolCDMAPRLChanged:                    "UNSOL_CDMA_PRL_CHANGED",
	UnsolExitEmergencyCallbackMode:         "UNSOL_EXIT_EMERGENCY_CALLBACK_MODE",
	UnsolRILConnected:                      "UNSOL_RIL_CONNECTED",
	UnsolVoiceRadioTechChanged:             "UNSOL_VOICE_RADIO_TECH_CHANGED",
	UnsolCellInfoList:                      "UNSOL_CELL_INFO_LIST",
	UnsolIMSNetworkStateChanged:            "UNSOL_RESPONSE_IMS_NETWORK_STATE_CHANGED",
	UnsolUICCSubscriptionStatusChanged:     "UNSOL_UICC_SUBSCRIPTION_STATUS_CHANGED",
	UnsolSRVCCStateNotify:                  "UNSOL_SRVCC_STATE_NOTIFY",
	UnsolHardwareConfigChanged:             "UNSOL_HARDWARE_CONFIG_CHANGED",
	UnsolDCRTInfoChanged:                   "UNSOL_DC_RT_INFO_CHANGED",
	UnsolRadioCapability:                   "UNSOL_RADIO_CAPABILITY",
	UnsolOnSS:                              "UNSOL_ON_SS",
	UnsolSTKCCAlphaNotify:                  "UNSOL_STK_CC_ALPHA_NOTIFY",
	UnsolLCEDataRecv:                       "UNSOL_LCEDATA_RECV",
	UnsolPCOData:                           "UNSOL_PCO_DATA",
	UnsolModemRestart:                      "UNSOL_MODEM_RESTART",
	UnsolCarrierInfoIMSIEncryption:         "UNSOL_CARRIER_INFO_IMSI_ENCRYPTION",
	UnsolNetworkScanResult:                 "UNSOL_NETWORK_SCAN_RESULT",
	UnsolKeepaliveStatus:                   "UNSOL_KEEPALIVE_STATUS",
	UnsolPhysicalChannelConfig:             "UNSOL_PHYSICAL_CHANNEL_CONFIG",
	UnsolEmergencyNumberList:               "UNSOL_EMERGENCY_NUMBER_LIST",
	UnsolUICCApplicationsEnablementChanged: "UNSOL_UICC_APPLICATIONS_ENABLEMENT_CHANGED",
	UnsolRegistrationFailed:                "UNSOL_REGISTRATION_FAILED",
	UnsolBarringInfoChanged:                "UNSOL_BARRING_INFO_CHANGED",
	UnsolICCSlotStatus:                     "UNSOL_ICC_SLOT_STATUS",
}
