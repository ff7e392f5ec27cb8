// Copyright (c) 2024 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package st

import "fmt"

// TypeID the serialized type code of a field.
type TypeID int

const (
	TypeUInt16    TypeID = 1
	TypeUInt32    TypeID = 2
	TypeUInt64    TypeID = 3
	TypeHash128   TypeID = 4
	TypeHash256   TypeID = 5
	TypeAmount    TypeID = 6
	TypeBlob      TypeID = 7
	TypeAccountID TypeID = 8
	TypeObject    TypeID = 14
	TypeArray     TypeID = 15
	TypeUInt8     TypeID = 16
	TypeHash160   TypeID = 17
	TypePathSet   TypeID = 18
	TypeVector256 TypeID = 19
)

// FieldID identifies a field by type code and field code.
type FieldID struct {
	Type TypeID
	Code int
}

var (
	objectEndMarker = FieldID{TypeObject, 1}
	arrayEndMarker  = FieldID{TypeArray, 1}
)

// fieldNames the known slice of the protocol's field dictionary,
// enough to name the fields of account-state entries, transactions
// and their metadata. Unknown codes render as Unknown(type,code).
var fieldNames = map[FieldID]string{
	{TypeUInt16, 1}: "LedgerEntryType",
	{TypeUInt16, 2}: "TransactionType",
	{TypeUInt16, 3}: "SignerWeight",

	{TypeUInt32, 2}:  "Flags",
	{TypeUInt32, 3}:  "SourceTag",
	{TypeUInt32, 4}:  "Sequence",
	{TypeUInt32, 5}:  "PreviousTxnLgrSeq",
	{TypeUInt32, 6}:  "LedgerSequence",
	{TypeUInt32, 7}:  "CloseTime",
	{TypeUInt32, 8}:  "ParentCloseTime",
	{TypeUInt32, 9}:  "SigningTime",
	{TypeUInt32, 10}: "Expiration",
	{TypeUInt32, 11}: "TransferRate",
	{TypeUInt32, 12}: "WalletSize",
	{TypeUInt32, 13}: "OwnerCount",
	{TypeUInt32, 14}: "DestinationTag",
	{TypeUInt32, 20}: "QualityIn",
	{TypeUInt32, 21}: "QualityOut",
	{TypeUInt32, 25}: "OfferSequence",
	{TypeUInt32, 27}: "LastLedgerSequence",
	{TypeUInt32, 28}: "TransactionIndex",
	{TypeUInt32, 33}: "SetFlag",
	{TypeUInt32, 34}: "ClearFlag",
	{TypeUInt32, 35}: "SignerQuorum",
	{TypeUInt32, 36}: "CancelAfter",
	{TypeUInt32, 37}: "FinishAfter",
	{TypeUInt32, 38}: "SignerListID",
	{TypeUInt32, 39}: "SettleDelay",
	{TypeUInt32, 40}: "TicketCount",
	{TypeUInt32, 41}: "TicketSequence",

	{TypeUInt64, 1}: "IndexNext",
	{TypeUInt64, 2}: "IndexPrevious",
	{TypeUInt64, 3}: "BookNode",
	{TypeUInt64, 4}: "OwnerNode",
	{TypeUInt64, 5}: "BaseFee",
	{TypeUInt64, 6}: "ExchangeRate",
	{TypeUInt64, 7}: "LowNode",
	{TypeUInt64, 8}: "HighNode",

	{TypeHash128, 1}: "EmailHash",

	{TypeHash256, 1}:  "LedgerHash",
	{TypeHash256, 2}:  "ParentHash",
	{TypeHash256, 3}:  "TransactionHash",
	{TypeHash256, 4}:  "AccountHash",
	{TypeHash256, 5}:  "PreviousTxnID",
	{TypeHash256, 6}:  "LedgerIndex",
	{TypeHash256, 7}:  "WalletLocator",
	{TypeHash256, 8}:  "RootIndex",
	{TypeHash256, 9}:  "AccountTxnID",
	{TypeHash256, 16}: "BookDirectory",
	{TypeHash256, 17}: "InvoiceID",
	{TypeHash256, 19}: "Amendment",
	{TypeHash256, 21}: "Digest",

	{TypeAmount, 1}:  "Amount",
	{TypeAmount, 2}:  "Balance",
	{TypeAmount, 3}:  "LimitAmount",
	{TypeAmount, 4}:  "TakerPays",
	{TypeAmount, 5}:  "TakerGets",
	{TypeAmount, 6}:  "LowLimit",
	{TypeAmount, 7}:  "HighLimit",
	{TypeAmount, 8}:  "Fee",
	{TypeAmount, 9}:  "SendMax",
	{TypeAmount, 10}: "DeliverMin",
	{TypeAmount, 18}: "DeliveredAmount",

	{TypeBlob, 1}:  "PublicKey",
	{TypeBlob, 2}:  "MessageKey",
	{TypeBlob, 3}:  "SigningPubKey",
	{TypeBlob, 4}:  "TxnSignature",
	{TypeBlob, 6}:  "Signature",
	{TypeBlob, 7}:  "Domain",
	{TypeBlob, 8}:  "FundCode",
	{TypeBlob, 9}:  "RemoveCode",
	{TypeBlob, 10}: "ExpireCode",
	{TypeBlob, 11}: "CreateCode",
	{TypeBlob, 12}: "MemoType",
	{TypeBlob, 13}: "MemoData",
	{TypeBlob, 14}: "MemoFormat",
	{TypeBlob, 16}: "Fulfillment",
	{TypeBlob, 17}: "Condition",

	{TypeAccountID, 1}: "Account",
	{TypeAccountID, 2}: "Owner",
	{TypeAccountID, 3}: "Destination",
	{TypeAccountID, 4}: "Issuer",
	{TypeAccountID, 5}: "Authorize",
	{TypeAccountID, 6}: "Unauthorize",
	{TypeAccountID, 8}: "RegularKey",

	{TypeObject, 2}:  "TransactionMetaData",
	{TypeObject, 3}:  "CreatedNode",
	{TypeObject, 4}:  "DeletedNode",
	{TypeObject, 5}:  "ModifiedNode",
	{TypeObject, 6}:  "PreviousFields",
	{TypeObject, 7}:  "FinalFields",
	{TypeObject, 8}:  "NewFields",
	{TypeObject, 9}:  "TemplateEntry",
	{TypeObject, 10}: "Memo",
	{TypeObject, 11}: "SignerEntry",
	{TypeObject, 16}: "Signer",
	{TypeObject, 18}: "Majority",

	{TypeArray, 3}:  "Signers",
	{TypeArray, 4}:  "SignerEntries",
	{TypeArray, 5}:  "Template",
	{TypeArray, 8}:  "AffectedNodes",
	{TypeArray, 9}:  "Memos",
	{TypeArray, 16}: "Majorities",

	{TypeUInt8, 1}:  "CloseResolution",
	{TypeUInt8, 2}:  "Method",
	{TypeUInt8, 3}:  "TransactionResult",
	{TypeUInt8, 16}: "TickSize",

	{TypeHash160, 1}: "TakerPaysCurrency",
	{TypeHash160, 2}: "TakerPaysIssuer",
	{TypeHash160, 3}: "TakerGetsCurrency",
	{TypeHash160, 4}: "TakerGetsIssuer",

	{TypePathSet, 1}: "Paths",

	{TypeVector256, 1}: "Indexes",
	{TypeVector256, 2}: "Hashes",
	{TypeVector256, 3}: "Amendments",
}

func fieldName(id FieldID) string {
	if name, ok := fieldNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d,%d)", id.Type, id.Code)
}

// readFieldID consumes a field header: type nibble and field nibble
// share one byte, with zero nibbles spilling into follow-up bytes.
func readFieldID(r *Reader) (FieldID, error) {
	b, err := r.ReadU8()
	if err != nil {
		return FieldID{}, err
	}
	typ := int(b >> 4)
	code := int(b & 0x0f)
	if typ == 0 {
		t, err := r.ReadU8()
		if err != nil {
			return FieldID{}, err
		}
		typ = int(t)
	}
	if code == 0 {
		c, err := r.ReadU8()
		if err != nil {
			return FieldID{}, err
		}
		code = int(c)
	}
	return FieldID{TypeID(typ), code}, nil
}
