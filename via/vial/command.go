package vial

// Command is a Vial command byte (vial-qmk quantum/vial.h).
type Command uint8

// Vial commands.
const (
	CommandGetKeyboardID    Command = 0x00
	CommandGetSize          Command = 0x01
	CommandGetKeyboardDef   Command = 0x02
	CommandGetEncoder       Command = 0x03
	CommandSetEncoder       Command = 0x04
	CommandGetUnlockStatus  Command = 0x05
	CommandUnlockStart      Command = 0x06
	CommandUnlockPoll       Command = 0x07
	CommandLock             Command = 0x08
	CommandQmkSettingsQuery Command = 0x09
	CommandQmkSettingsGet   Command = 0x0A
	CommandQmkSettingsSet   Command = 0x0B
	CommandQmkSettingsReset Command = 0x0C
	CommandDynamicEntryOp   Command = 0x0D
	CommandUnhandled        Command = 0xFF
)

// CommandFromByte converts a raw command byte. Total: unknown wire values
// map to CommandUnhandled.
func CommandFromByte(b byte) Command {
	if b <= byte(CommandDynamicEntryOp) {
		return Command(b)
	}
	return CommandUnhandled
}

// String returns the command name for logs.
func (c Command) String() string {
	switch c {
	case CommandGetKeyboardID:
		return "GetKeyboardId"
	case CommandGetSize:
		return "GetSize"
	case CommandGetKeyboardDef:
		return "GetKeyboardDef"
	case CommandGetEncoder:
		return "GetEncoder"
	case CommandSetEncoder:
		return "SetEncoder"
	case CommandGetUnlockStatus:
		return "GetUnlockStatus"
	case CommandUnlockStart:
		return "UnlockStart"
	case CommandUnlockPoll:
		return "UnlockPoll"
	case CommandLock:
		return "Lock"
	case CommandQmkSettingsQuery:
		return "QmkSettingsQuery"
	case CommandQmkSettingsGet:
		return "QmkSettingsGet"
	case CommandQmkSettingsSet:
		return "QmkSettingsSet"
	case CommandQmkSettingsReset:
		return "QmkSettingsReset"
	case CommandDynamicEntryOp:
		return "DynamicEntryOp"
	default:
		return "Unhandled"
	}
}

// DynamicCommand is a sub-command byte of the DynamicEntryOp family.
type DynamicCommand uint8

// Dynamic entry sub-commands.
const (
	DynamicGetNumberOfEntries DynamicCommand = 0x00
	DynamicTapDanceGet        DynamicCommand = 0x01
	DynamicTapDanceSet        DynamicCommand = 0x02
	DynamicComboGet           DynamicCommand = 0x03
	DynamicComboSet           DynamicCommand = 0x04
	DynamicKeyOverrideGet     DynamicCommand = 0x05
	DynamicKeyOverrideSet     DynamicCommand = 0x06
	DynamicUnhandled          DynamicCommand = 0xFF
)

// DynamicCommandFromByte converts a raw sub-command byte. Total: unknown
// wire values map to DynamicUnhandled.
func DynamicCommandFromByte(b byte) DynamicCommand {
	if b <= byte(DynamicKeyOverrideSet) {
		return DynamicCommand(b)
	}
	return DynamicUnhandled
}

// String returns the sub-command name for logs.
func (c DynamicCommand) String() string {
	switch c {
	case DynamicGetNumberOfEntries:
		return "GetNumberOfEntries"
	case DynamicTapDanceGet:
		return "TapDanceGet"
	case DynamicTapDanceSet:
		return "TapDanceSet"
	case DynamicComboGet:
		return "ComboGet"
	case DynamicComboSet:
		return "ComboSet"
	case DynamicKeyOverrideGet:
		return "KeyOverrideGet"
	case DynamicKeyOverrideSet:
		return "KeyOverrideSet"
	default:
		return "Unhandled"
	}
}
