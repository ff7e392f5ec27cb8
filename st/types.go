package st

import "fmt"

// ledgerEntryTypes symbolic names for the LedgerEntryType field.
var ledgerEntryTypes = map[uint16]string{
	0x0061: "AccountRoot",
	0x0064: "DirectoryNode",
	0x006F: "Offer",
	0x0072: "RippleState",
	0x0053: "SignerList",
	0x0054: "Ticket",
	0x0075: "Escrow",
	0x0078: "PayChannel",
	0x0043: "Check",
	0x0070: "DepositPreauth",
	0x0066: "Amendments",
	0x0068: "LedgerHashes",
	0x0073: "FeeSettings",
	0x004E: "NegativeUNL",
}

// transactionTypes symbolic names for the TransactionType field.
var transactionTypes = map[uint16]string{
	0:  "Payment",
	1:  "EscrowCreate",
	2:  "EscrowFinish",
	3:  "AccountSet",
	4:  "EscrowCancel",
	5:  "SetRegularKey",
	7:  "OfferCreate",
	8:  "OfferCancel",
	10: "TicketCreate",
	12: "SignerListSet",
	13: "PaymentChannelCreate",
	14: "PaymentChannelFund",
	15: "PaymentChannelClaim",
	16: "CheckCreate",
	17: "CheckCash",
	18: "CheckCancel",
	19: "DepositPreauth",
	20: "TrustSet",
	21: "AccountDelete",
}

// transactionResults symbolic names for the TransactionResult meta
// field (engine result codes that appear in closed ledgers).
var transactionResults = map[uint8]string{
	0:   "tesSUCCESS",
	100: "tecCLAIM",
	101: "tecPATH_PARTIAL",
	102: "tecUNFUNDED_ADD",
	103: "tecUNFUNDED_OFFER",
	104: "tecUNFUNDED_PAYMENT",
	105: "tecFAILED_PROCESSING",
	121: "tecDIR_FULL",
	122: "tecINSUF_RESERVE_LINE",
	123: "tecINSUF_RESERVE_OFFER",
	124: "tecNO_DST",
	125: "tecNO_DST_INSUF_XRP",
	128: "tecPATH_DRY",
	132: "tecOWNERS",
}

func transactionResultName(v uint8) string {
	if name, ok := transactionResults[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}

func ledgerEntryTypeName(v uint16) string {
	if name, ok := ledgerEntryTypes[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", v)
}

func transactionTypeName(v uint16) string {
	if name, ok := transactionTypes[v]; ok {
		return name
	}
	return fmt.Sprintf("%d", v)
}
