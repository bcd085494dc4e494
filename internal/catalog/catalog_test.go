package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestToString(t *testing.T) {
	tests := []struct {
		op   int32
		want string
	}{
		{RequestGetSIMStatus, "GET_SIM_STATUS"},
		{RequestSetupDataCall, "SETUP_DATA_CALL"},
		{RequestGetHardwareConfig, "GET_HARDWARE_CONFIG"},
		{RequestStopKeepalive, "STOP_KEEPALIVE"},
		{ResponseAcknowledgement, "RIL_RESPONSE_ACKNOWLEDGEMENT"},
		{0, UnknownRequest},
		{-1, UnknownRequest},
		{0x7FFFFFFF, UnknownRequest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RequestToString(tt.op), "opcode %d", tt.op)
	}
}

func TestResponseToString(t *testing.T) {
	assert.Equal(t, "UNSOL_RESPONSE_RADIO_STATE_CHANGED", ResponseToString(UnsolRadioStateChanged))
	assert.Equal(t, "UNSOL_CELL_INFO_LIST", ResponseToString(UnsolCellInfoList))
	assert.Equal(t, "UNSOL_ICC_SLOT_STATUS", ResponseToString(UnsolICCSlotStatus))
	assert.Equal(t, UnknownResponse, ResponseToString(0x7FFFFFFF))
	assert.Equal(t, UnknownResponse, ResponseToString(RequestDial))
}

func TestOpcodeValues(t *testing.T) {
	assert.Equal(t, int32(27), RequestSetupDataCall)
	assert.Equal(t, int32(145), RequestStopKeepalive)
	assert.Equal(t, int32(1010), UnsolDataCallListChanged)
	assert.Equal(t, int32(1040), UnsolHardwareConfigChanged)
	assert.Equal(t, int32(1055), UnsolBarringInfoChanged)
}

func TestUnsolicitedOpcodesSorted(t *testing.T) {
	ops := UnsolicitedOpcodes()
	assert.Equal(t, UnsolRadioStateChanged, ops[0])
	assert.Equal(t, UnsolICCSlotStatus, ops[len(ops)-1])
	for i := 1; i < len(ops); i++ {
		assert.Less(t, ops[i-1], ops[i])
	}
	assert.Equal(t, "1036/UNSOL_CELL_INFO_LIST", Describe(UnsolCellInfoList))
	assert.Equal(t, "10/DIAL", Describe(RequestDial))
}
