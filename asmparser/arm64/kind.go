package arm64

// Kind is the closed enumeration of instruction kinds recognized by the
// classifier. Adding a mnemonic is a one-line edit to kindByMnemonic.
type Kind string

const (
	// Arithmetic.
	KindADD   Kind = "ADD"
	KindSUB   Kind = "SUB"
	KindMUL   Kind = "MUL"
	KindMADD  Kind = "MADD"
	KindMSUB  Kind = "MSUB"
	KindSDIV  Kind = "SDIV"
	KindUDIV  Kind = "UDIV"
	KindSMULL Kind = "SMULL"
	KindUMULL Kind = "UMULL"
	KindNEG   Kind = "NEG"
	KindADC   Kind = "ADC"
	KindSBC   Kind = "SBC"

	// Logical.
	KindAND Kind = "AND"
	KindORR Kind = "ORR"
	KindEOR Kind = "EOR"
	KindBIC Kind = "BIC"
	KindORN Kind = "ORN"
	KindEON Kind = "EON"
	KindMVN Kind = "MVN"

	// Shifts.
	KindLSL Kind = "LSL"
	KindLSR Kind = "LSR"
	KindASR Kind = "ASR"
	KindROR Kind = "ROR"

	// Bitfield.
	KindUBFM  Kind = "UBFM"
	KindSBFM  Kind = "SBFM"
	KindBFM   Kind = "BFM"
	KindBFI   Kind = "BFI"
	KindBFXIL Kind = "BFXIL"
	KindUBFX  Kind = "UBFX"
	KindSBFX  Kind = "SBFX"
	KindUBFIZ Kind = "UBFIZ"
	KindSBFIZ Kind = "SBFIZ"
	KindEXTR  Kind = "EXTR"

	// Bit manipulation.
	KindREV   Kind = "REV"
	KindREV16 Kind = "REV16"
	KindREV32 Kind = "REV32"
	KindCLZ   Kind = "CLZ"
	KindCLS   Kind = "CLS"
	KindRBIT  Kind = "RBIT"

	// Loads and stores.
	KindLDR   Kind = "LDR"
	KindLDRB  Kind = "LDRB"
	KindLDRH  Kind = "LDRH"
	KindLDRSB Kind = "LDRSB"
	KindLDRSH Kind = "LDRSH"
	KindLDRSW Kind = "LDRSW"
	KindLDP   Kind = "LDP"
	KindLDUR  Kind = "LDUR"
	KindLDXR  Kind = "LDXR"
	KindLDAR  Kind = "LDAR"
	KindSTR   Kind = "STR"
	KindSTRB  Kind = "STRB"
	KindSTRH  Kind = "STRH"
	KindSTP   Kind = "STP"
	KindSTUR  Kind = "STUR"
	KindSTXR  Kind = "STXR"
	KindSTLR  Kind = "STLR"

	// Atomics.
	KindLDADD   Kind = "LDADD"
	KindLDADDAL Kind = "LDADDAL"
	KindLDADDH  Kind = "LDADDH"
	KindLDADDB  Kind = "LDADDB"
	KindLDADDLH Kind = "LDADDLH"
	KindLDADDLB Kind = "LDADDLB"
	KindLDCLR   Kind = "LDCLR"
	KindLDEOR   Kind = "LDEOR"
	KindLDSET   Kind = "LDSET"
	KindSWP     Kind = "SWP"
	KindCAS     Kind = "CAS"
	KindCASAL   Kind = "CASAL"
	KindCASA    Kind = "CASA"
	KindCASB    Kind = "CASB"
	KindCASH    Kind = "CASH"
	KindCASP    Kind = "CASP"
	KindSTADD   Kind = "STADD"
	KindSTADDL  Kind = "STADDL"
	KindSTADDB  Kind = "STADDB"
	KindSTADDH  Kind = "STADDH"

	// Load/store exclusive.
	KindLDXRB  Kind = "LDXRB"
	KindLDXRH  Kind = "LDXRH"
	KindSTXRB  Kind = "STXRB"
	KindSTXRH  Kind = "STXRH"
	KindLDAXRB Kind = "LDAXRB"
	KindLDAXRH Kind = "LDAXRH"
	KindSTLXRB Kind = "STLXRB"
	KindSTLXRH Kind = "STLXRH"
	KindLDXP   Kind = "LDXP"
	KindSTXP   Kind = "STXP"

	// Branches.
	KindB   Kind = "B"
	KindBL  Kind = "BL"
	KindBR  Kind = "BR"
	KindBLR Kind = "BLR"
	KindRET Kind = "RET"

	// Conditional branches.
	KindBEQ Kind = "BEQ"
	KindBNE Kind = "BNE"
	KindBCS Kind = "BCS"
	KindBCC Kind = "BCC"
	KindBMI Kind = "BMI"
	KindBPL Kind = "BPL"
	KindBVS Kind = "BVS"
	KindBVC Kind = "BVC"
	KindBHI Kind = "BHI"
	KindBLS Kind = "BLS"
	KindBGE Kind = "BGE"
	KindBLT Kind = "BLT"
	KindBGT Kind = "BGT"
	KindBLE Kind = "BLE"

	// Compare and branch.
	KindCBZ  Kind = "CBZ"
	KindCBNZ Kind = "CBNZ"
	KindTBZ  Kind = "TBZ"
	KindTBNZ Kind = "TBNZ"

	// Comparisons.
	KindCMP Kind = "CMP"
	KindCMN Kind = "CMN"
	KindTST Kind = "TST"

	// Data movement.
	KindMOV  Kind = "MOV"
	KindMOVZ Kind = "MOVZ"
	KindMOVK Kind = "MOVK"
	KindMOVN Kind = "MOVN"

	// Conditional operations.
	KindCSEL  Kind = "CSEL"
	KindCSINC Kind = "CSINC"
	KindCSINV Kind = "CSINV"
	KindCSNEG Kind = "CSNEG"
	KindCSET  Kind = "CSET"
	KindCSETM Kind = "CSETM"
	KindCINC  Kind = "CINC"
	KindCINV  Kind = "CINV"
	KindCNEG  Kind = "CNEG"
	KindCCMP  Kind = "CCMP"
	KindCCMN  Kind = "CCMN"

	// System.
	KindNOP   Kind = "NOP"
	KindSVC   Kind = "SVC"
	KindHLT   Kind = "HLT"
	KindBRK   Kind = "BRK"
	KindDMB   Kind = "DMB"
	KindDSB   Kind = "DSB"
	KindISB   Kind = "ISB"
	KindWFE   Kind = "WFE"
	KindWFI   Kind = "WFI"
	KindYIELD Kind = "YIELD"
	KindMRS   Kind = "MRS"
	KindMSR   Kind = "MSR"
	KindERET  Kind = "ERET"
	KindDRPS  Kind = "DRPS"

	// Floating point.
	KindFADD   Kind = "FADD"
	KindFSUB   Kind = "FSUB"
	KindFMUL   Kind = "FMUL"
	KindFDIV   Kind = "FDIV"
	KindFMADD  Kind = "FMADD"
	KindFMSUB  Kind = "FMSUB"
	KindFNEG   Kind = "FNEG"
	KindFABS   Kind = "FABS"
	KindFSQRT  Kind = "FSQRT"
	KindFCMP   Kind = "FCMP"
	KindFCMPE  Kind = "FCMPE"
	KindFCVT   Kind = "FCVT"
	KindFCVTZS Kind = "FCVTZS"
	KindFCVTZU Kind = "FCVTZU"
	KindSCVTF  Kind = "SCVTF"
	KindUCVTF  Kind = "UCVTF"
	KindFMOV   Kind = "FMOV"
	KindFMLA   Kind = "FMLA"
	KindFMLS   Kind = "FMLS"
	KindFMIN   Kind = "FMIN"
	KindFMAX   Kind = "FMAX"
	KindFMINNM Kind = "FMINNM"
	KindFMAXNM Kind = "FMAXNM"
	KindFCVTAS Kind = "FCVTAS"
	KindFCVTAU Kind = "FCVTAU"
	KindFCVTMS Kind = "FCVTMS"
	KindFCVTMU Kind = "FCVTMU"
	KindFCVTNS Kind = "FCVTNS"
	KindFCVTNU Kind = "FCVTNU"
	KindFCVTPS Kind = "FCVTPS"
	KindFCVTPU Kind = "FCVTPU"
	KindFRINTA Kind = "FRINTA"
	KindFRINTI Kind = "FRINTI"
	KindFRINTM Kind = "FRINTM"
	KindFRINTN Kind = "FRINTN"
	KindFRINTP Kind = "FRINTP"
	KindFRINTX Kind = "FRINTX"
	KindFRINTZ Kind = "FRINTZ"

	// SIMD.
	KindADDV   Kind = "ADDV"
	KindSMAXV  Kind = "SMAXV"
	KindSMINV  Kind = "SMINV"
	KindUMAXV  Kind = "UMAXV"
	KindUMINV  Kind = "UMINV"
	KindUADDLV Kind = "UADDLV"
	KindSADDLV Kind = "SADDLV"
	KindEXT    Kind = "EXT"
	KindZIP1   Kind = "ZIP1"
	KindZIP2   Kind = "ZIP2"
	KindUZP1   Kind = "UZP1"
	KindUZP2   Kind = "UZP2"
	KindTRN1   Kind = "TRN1"
	KindTRN2   Kind = "TRN2"
	KindTBL    Kind = "TBL"
	KindTBX    Kind = "TBX"
	KindLD1    Kind = "LD1"
	KindST1    Kind = "ST1"
	KindLD2    Kind = "LD2"
	KindST2    Kind = "ST2"
	KindINS    Kind = "INS"
	KindDUP    Kind = "DUP"
	KindCNT    Kind = "CNT"
	KindSQADD  Kind = "SQADD"
	KindUQADD  Kind = "UQADD"
	KindSQSUB  Kind = "SQSUB"
	KindUQSUB  Kind = "UQSUB"
	KindSHL    Kind = "SHL"
	KindSSHR   Kind = "SSHR"
	KindUSHR   Kind = "USHR"
	KindSXTL   Kind = "SXTL"
	KindUXTL   Kind = "UXTL"

	// Cryptographic.
	KindAESE      Kind = "AESE"
	KindAESD      Kind = "AESD"
	KindAESMC     Kind = "AESMC"
	KindAESIMC    Kind = "AESIMC"
	KindSHA1C     Kind = "SHA1C"
	KindSHA1H     Kind = "SHA1H"
	KindSHA1M     Kind = "SHA1M"
	KindSHA1P     Kind = "SHA1P"
	KindSHA256H   Kind = "SHA256H"
	KindSHA256H2  Kind = "SHA256H2"
	KindSHA256SU0 Kind = "SHA256SU0"
	KindSHA256SU1 Kind = "SHA256SU1"

	// CRC.
	KindCRC32B  Kind = "CRC32B"
	KindCRC32H  Kind = "CRC32H"
	KindCRC32W  Kind = "CRC32W"
	KindCRC32X  Kind = "CRC32X"
	KindCRC32CB Kind = "CRC32CB"

	// Pointer authentication.
	KindPACIA Kind = "PACIA"
	KindPACDA Kind = "PACDA"
	KindAUTIA Kind = "AUTIA"
	KindAUTDA Kind = "AUTDA"

	// Memory tagging.
	KindIRG Kind = "IRG"
	KindGMI Kind = "GMI"
	KindLDG Kind = "LDG"
	KindSTG Kind = "STG"

	// PC-relative addressing.
	KindADRP Kind = "ADRP"
	KindADR  Kind = "ADR"
)

// kindByMnemonic is the closed mnemonic table. Condition-suffixed branch
// mnemonics with two spellings for one condition ("b.cs"/"b.hs",
// "b.cc"/"b.lo") are separate keys resolving to the same kind.
var kindByMnemonic = map[string]Kind{
	"add": KindADD,
	"sub": KindSUB,
	"mul": KindMUL,
	"madd": KindMADD,
	"msub": KindMSUB,
	"sdiv": KindSDIV,
	"udiv": KindUDIV,
	"smull": KindSMULL,
	"umull": KindUMULL,
	"neg": KindNEG,
	"adc": KindADC,
	"sbc": KindSBC,
	"and": KindAND,
	"orr": KindORR,
	"eor": KindEOR,
	"bic": KindBIC,
	"orn": KindORN,
	"eon": KindEON,
	"mvn": KindMVN,
	"lsl": KindLSL,
	"lsr": KindLSR,
	"asr": KindASR,
	"ror": KindROR,
	"ubfm": KindUBFM,
	"sbfm": KindSBFM,
	"bfm": KindBFM,
	"bfi": KindBFI,
	"bfxil": KindBFXIL,
	"ubfx": KindUBFX,
	"sbfx": KindSBFX,
	"rev": KindREV,
	"rev16": KindREV16,
	"rev32": KindREV32,
	"clz": KindCLZ,
	"cls": KindCLS,
	"rbit": KindRBIT,
	"ldr": KindLDR,
	"ldrb": KindLDRB,
	"ldrh": KindLDRH,
	"ldrsb": KindLDRSB,
	"ldrsh": KindLDRSH,
	"ldrsw": KindLDRSW,
	"ldp": KindLDP,
	"ldur": KindLDUR,
	"ldxr": KindLDXR,
	"ldar": KindLDAR,
	"str": KindSTR,
	"strb": KindSTRB,
	"strh": KindSTRH,
	"stp": KindSTP,
	"stur": KindSTUR,
	"stxr": KindSTXR,
	"stlr": KindSTLR,
	"ldadd": KindLDADD,
	"ldaddal": KindLDADDAL,
	"ldclr": KindLDCLR,
	"ldeor": KindLDEOR,
	"ldset": KindLDSET,
	"swp": KindSWP,
	"cas": KindCAS,
	"casal": KindCASAL,
	"b": KindB,
	"bl": KindBL,
	"br": KindBR,
	"blr": KindBLR,
	"ret": KindRET,
	"b.eq": KindBEQ,
	"b.ne": KindBNE,
	"b.cs": KindBCS,
	"b.hs": KindBCS,
	"b.cc": KindBCC,
	"b.lo": KindBCC,
	"b.mi": KindBMI,
	"b.pl": KindBPL,
	"b.vs": KindBVS,
	"b.vc": KindBVC,
	"b.hi": KindBHI,
	"b.ls": KindBLS,
	"b.ge": KindBGE,
	"b.lt": KindBLT,
	"b.gt": KindBGT,
	"b.le": KindBLE,
	"cbz": KindCBZ,
	"cbnz": KindCBNZ,
	"tbz": KindTBZ,
	"tbnz": KindTBNZ,
	"cmp": KindCMP,
	"cmn": KindCMN,
	"tst": KindTST,
	"mov": KindMOV,
	"movz": KindMOVZ,
	"movk": KindMOVK,
	"movn": KindMOVN,
	"nop": KindNOP,
	"svc": KindSVC,
	"hlt": KindHLT,
	"brk": KindBRK,
	"dmb": KindDMB,
	"dsb": KindDSB,
	"isb": KindISB,
	"wfe": KindWFE,
	"wfi": KindWFI,
	"yield": KindYIELD,
	"mrs": KindMRS,
	"msr": KindMSR,
	"fadd": KindFADD,
	"fsub": KindFSUB,
	"fmul": KindFMUL,
	"fdiv": KindFDIV,
	"fmadd": KindFMADD,
	"fmsub": KindFMSUB,
	"fneg": KindFNEG,
	"fabs": KindFABS,
	"fsqrt": KindFSQRT,
	"fcmp": KindFCMP,
	"fcmpe": KindFCMPE,
	"fcvt": KindFCVT,
	"fcvtzs": KindFCVTZS,
	"fcvtzu": KindFCVTZU,
	"scvtf": KindSCVTF,
	"ucvtf": KindUCVTF,
	"fmov": KindFMOV,
	"addv": KindADDV,
	"smaxv": KindSMAXV,
	"sminv": KindSMINV,
	"umaxv": KindUMAXV,
	"ext": KindEXT,
	"zip1": KindZIP1,
	"zip2": KindZIP2,
	"uzp1": KindUZP1,
	"trn1": KindTRN1,
	"tbl": KindTBL,
	"tbx": KindTBX,
	"ld1": KindLD1,
	"st1": KindST1,
	"ld2": KindLD2,
	"st2": KindST2,
	"aese": KindAESE,
	"aesd": KindAESD,
	"aesmc": KindAESMC,
	"aesimc": KindAESIMC,
	"sha1c": KindSHA1C,
	"sha1h": KindSHA1H,
	"sha1m": KindSHA1M,
	"sha1p": KindSHA1P,
	"sha256h": KindSHA256H,
	"sha256h2": KindSHA256H2,
	"sha256su0": KindSHA256SU0,
	"sha256su1": KindSHA256SU1,
	"crc32b": KindCRC32B,
	"crc32h": KindCRC32H,
	"crc32w": KindCRC32W,
	"crc32x": KindCRC32X,
	"crc32cb": KindCRC32CB,
	"pacia": KindPACIA,
	"pacda": KindPACDA,
	"autia": KindAUTIA,
	"autda": KindAUTDA,
	"irg": KindIRG,
	"gmi": KindGMI,
	"ldg": KindLDG,
	"stg": KindSTG,
	"csel": KindCSEL,
	"csinc": KindCSINC,
	"csinv": KindCSINV,
	"csneg": KindCSNEG,
	"cset": KindCSET,
	"csetm": KindCSETM,
	"cinc": KindCINC,
	"cinv": KindCINV,
	"cneg": KindCNEG,
	"ccmp": KindCCMP,
	"ccmn": KindCCMN,
	"ubfiz": KindUBFIZ,
	"sbfiz": KindSBFIZ,
	"extr": KindEXTR,
	"fmla": KindFMLA,
	"fmls": KindFMLS,
	"fmin": KindFMIN,
	"fmax": KindFMAX,
	"fminnm": KindFMINNM,
	"fmaxnm": KindFMAXNM,
	"fcvtas": KindFCVTAS,
	"fcvtau": KindFCVTAU,
	"fcvtms": KindFCVTMS,
	"fcvtmu": KindFCVTMU,
	"fcvtns": KindFCVTNS,
	"fcvtnu": KindFCVTNU,
	"fcvtps": KindFCVTPS,
	"fcvtpu": KindFCVTPU,
	"frinta": KindFRINTA,
	"frinti": KindFRINTI,
	"frintm": KindFRINTM,
	"frintn": KindFRINTN,
	"frintp": KindFRINTP,
	"frintx": KindFRINTX,
	"frintz": KindFRINTZ,
	"uaddlv": KindUADDLV,
	"saddlv": KindSADDLV,
	"uminv": KindUMINV,
	"ins": KindINS,
	"dup": KindDUP,
	"uzp2": KindUZP2,
	"trn2": KindTRN2,
	"cnt": KindCNT,
	"sqadd": KindSQADD,
	"uqadd": KindUQADD,
	"sqsub": KindSQSUB,
	"uqsub": KindUQSUB,
	"shl": KindSHL,
	"sshr": KindSSHR,
	"ushr": KindUSHR,
	"sxtl": KindSXTL,
	"uxtl": KindUXTL,
	"ldaddh": KindLDADDH,
	"ldaddb": KindLDADDB,
	"ldaddlh": KindLDADDLH,
	"ldaddlb": KindLDADDLB,
	"casa": KindCASA,
	"casb": KindCASB,
	"cash": KindCASH,
	"casp": KindCASP,
	"stadd": KindSTADD,
	"staddl": KindSTADDL,
	"staddb": KindSTADDB,
	"staddh": KindSTADDH,
	"ldxrb": KindLDXRB,
	"ldxrh": KindLDXRH,
	"stxrb": KindSTXRB,
	"stxrh": KindSTXRH,
	"ldaxrb": KindLDAXRB,
	"ldaxrh": KindLDAXRH,
	"stlxrb": KindSTLXRB,
	"stlxrh": KindSTLXRH,
	"ldxp": KindLDXP,
	"stxp": KindSTXP,
	"eret": KindERET,
	"drps": KindDRPS,
	"adrp": KindADRP,
	"adr": KindADR,
}
