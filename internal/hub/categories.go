package hub

import (
	"fmt"

	"github.com/LeoCommon/modemcore/internal/catalog"
)

// ListCategory names an event kind with any number of registrants
type ListCategory int

const (
	CallStateChanged ListCategory = iota
	NetworkStateChanged
	DataCallListChanged
	SIMRefresh
	SIMStatusChanged
	RingbackTone
	ResendIncallMute
	ExitEmergencyCallbackMode
	RILConnected
	VoiceRadioTechChanged
	CellInfoList
	IMSNetworkStateChanged
	SubscriptionStatusChanged
	SRVCCState
	HardwareConfigChanged
	RadioCapabilityChanged
	LinkCapacityChanged
	PCOData
	ModemRestart
	PhysicalChannelConfig
	EmergencyNumberList
	UICCApplicationsEnablement
	BarringInfoChanged
	ICCSlotStatus

	numListCategories
)

var listNames = [numListCategories]string{
	"call state changed",
	"network state changed",
	"data call list changed",
	"sim refresh",
	"sim status changed",
	"ringback tone",
	"resend incall mute",
	"exit emergency callback mode",
	"ril connected",
	"voice radio tech changed",
	"cell info list",
	"ims network state changed",
	"subscription status changed",
	"srvcc state",
	"hardware config changed",
	"radio capability changed",
	"link capacity changed",
	"pco data",
	"modem restart",
	"physical channel config",
	"emergency number list",
	"uicc applications enablement",
	"barring info changed",
	"icc slot status",
}

func (c ListCategory) String() string {
	if c < 0 || c >= numListCategories {
		return fmt.Sprintf("ListCategory(%d)", int(c))
	}
	return listNames[c]
}

// ListCategories returns every list category
func ListCategories() []ListCategory {
	out := make([]ListCategory, 0, numListCategories)
	for c := ListCategory(0); c < numListCategories; c++ {
		out = append(out, c)
	}
	return out
}

// SlotCategory names an event kind with at most one listener
type SlotCategory int

const (
	NewSMS SlotCategory = iota
	SMSStatusReport
	SMSOnSIM
	USSD
	NITZTime
	SignalStrength
	SuppServiceNotification
	STKSessionEnd
	STKProactiveCommand
	STKEventNotify
	STKCallSetup
	SIMSMSStorageFull
	CallRing
	CDMANewSMS
	NewBroadcastSMS
	RUIMSMSStorageFull
	RestrictedStateChanged
	EmergencyCallbackMode
	OEMHookRaw
	SS
	STKCCAlphaNotify

	numSlotCategories
)

var slotNames = [numSlotCategories]string{
	"new sms",
	"sms status report",
	"sms on sim",
	"ussd",
	"nitz time",
	"signal strength",
	"supp service notification",
	"stk session end",
	"stk proactive command",
	"stk event notify",
	"stk call setup",
	"sim sms storage full",
	"call ring",
	"cdma new sms",
	"new broadcast sms",
	"ruim sms storage full",
	"restricted state changed",
	"emergency callback mode",
	"oem hook raw",
	"ss",
	"stk cc alpha notify",
}

func (c SlotCategory) String() string {
	if c < 0 || c >= numSlotCategories {
		return fmt.Sprintf("SlotCategory(%d)", int(c))
	}
	return slotNames[c]
}

// SlotCategories returns every slot category
func SlotCategories() []SlotCategory {
	out := make([]SlotCategory, 0, numSlotCategories)
	for c := SlotCategory(0); c < numSlotCategories; c++ {
		out = append(out, c)
	}
	return out
}

// route points an unsolicited opcode at exactly one list or slot
type route struct {
	slot   bool
	list   ListCategory
	single SlotCategory
}

func toList(c ListCategory) route { return route{list: c} }
func toSlot(c SlotCategory) route { return route{slot: true, single: c} }

var routes = map[int32]route{
	catalog.UnsolCallStateChanged:                  toList(CallStateChanged),
	catalog.UnsolNetworkStateChanged:               toList(NetworkStateChanged),
	catalog.UnsolNewSMS:                            toSlot(NewSMS),
	catalog.UnsolNewSMSStatusReport:                toSlot(SMSStatusReport),
	catalog.UnsolNewSMSOnSIM:                       toSlot(SMSOnSIM),
	catalog.UnsolOnUSSD:                            toSlot(USSD),
	catalog.UnsolOnUSSDRequest:                     toSlot(USSD),
	catalog.UnsolNITZTimeReceived:                  toSlot(NITZTime),
	catalog.UnsolSignalStrength:                    toSlot(SignalStrength),
	catalog.UnsolDataCallListChanged:               toList(DataCallListChanged),
	catalog.UnsolSuppSvcNotification:               toSlot(SuppServiceNotification),
	catalog.UnsolSTKSessionEnd:                     toSlot(STKSessionEnd),
	catalog.UnsolSTKProactiveCommand:               toSlot(STKProactiveCommand),
	catalog.UnsolSTKEventNotify:                    toSlot(STKEventNotify),
	catalog.UnsolSTKCallSetup:                      toSlot(STKCallSetup),
	catalog.UnsolSIMSMSStorageFull:                 toSlot(SIMSMSStorageFull),
	catalog.UnsolSIMRefresh:                        toList(SIMRefresh),
	catalog.UnsolCallRing:                          toSlot(CallRing),
	catalog.UnsolSIMStatusChanged:                  toList(SIMStatusChanged),
	catalog.UnsolCDMANewSMS:                        toSlot(CDMANewSMS),
	catalog.UnsolNewBroadcastSMS:                   toSlot(NewBroadcastSMS),
	catalog.UnsolCDMARUIMSMSStorageFull:            toSlot(RUIMSMSStorageFull),
	catalog.UnsolRestrictedStateChanged:            toSlot(RestrictedStateChanged),
	catalog.UnsolEnterEmergencyCallbackMode:        toSlot(EmergencyCallbackMode),
	catalog.UnsolOEMHookRaw:                        toSlot(OEMHookRaw),
	catalog.UnsolRingbackTone:                      toList(RingbackTone),
	catalog.UnsolResendIncallMute:                  toList(ResendIncallMute),
	catalog.UnsolExitEmergencyCallbackMode:         toList(ExitEmergencyCallbackMode),
	catalog.UnsolRILConnected:                      toList(RILConnected),
	catalog.UnsolVoiceRadioTechChanged:             toList(VoiceRadioTechChanged),
	catalog.UnsolCellInfoList:                      toList(CellInfoList),
	catalog.UnsolIMSNetworkStateChanged:            toList(IMSNetworkStateChanged),
	catalog.UnsolUICCSubscriptionStatusChanged:     toList(SubscriptionStatusChanged),
	catalog.UnsolSRVCCStateNotify:                  toList(SRVCCState),
	catalog.UnsolHardwareConfigChanged:             toList(HardwareConfigChanged),
	catalog.UnsolRadioCapability:                   toList(RadioCapabilityChanged),
	catalog.UnsolOnSS:                              toSlot(SS),
	catalog.UnsolSTKCCAlphaNotify:                  toSlot(STKCCAlphaNotify),
	catalog.UnsolLCEDataRecv:                       toList(LinkCapacityChanged),
	catalog.UnsolPCOData:                           toList(PCOData),
	catalog.UnsolModemRestart:                      toList(ModemRestart),
	catalog.UnsolPhysicalChannelConfig:             toList(PhysicalChannelConfig),
	catalog.UnsolEmergencyNumberList:               toList(EmergencyNumberList),
	catalog.UnsolUICCApplicationsEnablementChanged: toList(UICCApplicationsEnablement),
	catalog.UnsolBarringInfoChanged:                toList(BarringInfoChanged),
	catalog.UnsolICCSlotStatus:                     toList(ICCSlotStatus),
}
