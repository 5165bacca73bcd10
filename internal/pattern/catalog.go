package pattern

import (
	"regexp"

	"github.com/Kurra-Praveen/FinDashboard-sub000/internal/model"
)

// Catalog returns the built-in pattern table. New bank shapes are added by
// appending here; no other component changes.
//
// Each pattern's comment shows a representative message the expression was
// written against. Sender ids and amounts in the samples are synthetic.
func Catalog() []TransactionPattern {
	return []TransactionPattern{
		// --- HDFC Bank -----------------------------------------------------

		// Sent Rs.50.00 From HDFC Bank A/C *8696 To LANKADA NAGAMANI On 01/09/25 Ref 415806086780
		{
			ID:     "hdfc_debit_v1",
			Issuer: IssuerHDFC,
			Regexp: regexp.MustCompile(
				`(?i)Sent\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+From\s+HDFC\s+Bank\s+A/C\s+[*Xx]*(\d+)\s+To\s+(.+?)\s+On\s+(\d{2}/\d{2}/\d{2})\s+Ref\s+(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Date:              CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.95,
		},
		// Rs.249.00 debited from HDFC Bank A/c XX8696 on 18-10-25 to VPA netflix.upi@icici Ref 527509312456
		{
			ID:     "hdfc_debit_v2",
			Issuer: IssuerHDFC,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+debited\s+from\s+HDFC\s+Bank\s+A/c\s+[*Xx]*(\d+)\s+on\s+([\d-]+)\s+to\s+(?:VPA\s+)?(\S+@\S+|.+?)\s+Ref\s+(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          Heuristic(),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
		// Rs.12,000.00 credited to HDFC Bank A/c XX8696 on 01-10-25 from VPA employer.payroll@okaxis Ref 52750931201
		{
			ID:     "hdfc_credit_v1",
			Issuer: IssuerHDFC,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+credited\s+to\s+HDFC\s+Bank\s+A/c\s+[*Xx]*(\d+)\s+on\s+([\d-]+)\s+from\s+(?:VPA\s+)?(\S+)\s+Ref\s+(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.95,
		},
		// You've spent Rs.776.33 On HDFC Bank CREDIT Card xx4523 At DECATHLON On 2025-08-30:20:41:47 Avl bal: Rs.56123.24
		{
			ID:     "hdfc_card_v1",
			Issuer: IssuerHDFC,
			Regexp: regexp.MustCompile(
				`(?i)You've\s+spent\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+On\s+HDFC\s+Bank\s+\w+\s+Card\s+[*Xx]*(\d+)\s+At\s+(.+?)\s+On\s+([\d-]+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Date:              CaptureGroup(4),
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},

		// --- ICICI Bank ----------------------------------------------------

		// Rs 11.00 debited from ICICI Bank Savings Account XX750 on 18-Oct-25 towards Google for GOOGLE AutoPay Retrieval Ref No.897984852915
		{
			ID:     "icici_debit_v1",
			Issuer: IssuerICICI,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+debited\s+from\s+ICICI\s+Bank[\w ]*?\s+Account\s+([Xx*]*\d+)\s+on\s+(\d{2}-\w{3}-\d{2})\s+towards\s+(.+?)\s+Ref\s+No\.?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.95,
		},
		// Rs 4,500.00 credited to ICICI Bank Account XX750 on 02-Sep-25 from NAGARAJU K. UPI Ref No 524312768901
		{
			ID:     "icici_credit_v1",
			Issuer: IssuerICICI,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+credited\s+to\s+ICICI\s+Bank\s+Account\s+([Xx*]*\d+)\s+on\s+(\d{2}-\w{3}-\d{2})\s+from\s+(.+?)[.\s]+(?:UPI\s+)?Ref\s+No\.?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.95,
		},
		// INR 232.42 spent on ICICI Bank Card XX9004 on 04-Mar-25 at ONE97 COMMUNICA. Avl Lmt: INR 1,23,456.28
		{
			ID:     "icici_card_v1",
			Issuer: IssuerICICI,
			Regexp: regexp.MustCompile(
				`(?i)INR\s+([\d,]+(?:\.\d+)?)\s+spent\s+on\s+ICICI\s+Bank\s+Card\s+([Xx*]*\d+)\s+on\s+([\w-]+)\s+at\s+(.+?)\.\s`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},

		// --- State Bank of India -------------------------------------------

		// Dear UPI user A/C X8659 debited by 35.0 on date 18Oct25 trf to BMTC BUS Refno 829856031636
		{
			ID:     "sbi_upi_debit_v1",
			Issuer: IssuerSBI,
			Regexp: regexp.MustCompile(
				`(?i)Dear\s+UPI\s+user\s+A/C\s+([Xx*]*\d+)\s+debited\s+by\s+([\d,]+(?:\.\d+)?)\s+on\s+date\s+(\d{2}\w{3}\d{2})\s+trf\s+to\s+(.+?)\s+Refno\s+(\w+)`),
			Account:           CaptureGroup(1),
			Amount:            CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.95,
		},
		// Your A/C XXXXX020450 Credited INR 1,000.00 on 18/10/25 -Deposit by transfer from JOHN DOE. Avl Bal INR 52,309.15-SBI
		{
			ID:     "sbi_credit_v1",
			Issuer: IssuerSBI,
			Regexp: regexp.MustCompile(
				`(?i)Your\s+A/C\s+([Xx*]*\d+)\s+Credited\s+INR\s+([\d,]+(?:\.\d+)?)\s+on\s+(\d{2}/\d{2}/\d{2})\s+-?\s*(?:Deposit\s+by\s+transfer\s+from\s+)?(.+?)[.\s]+Avl\s+Bal`),
			Account:           CaptureGroup(1),
			Amount:            CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.90,
		},

		// --- Axis Bank -----------------------------------------------------

		// Spent Card no. XX7215 INR 1579.00 13-09-25 19:57:25 DECATHLON IND Avl Lmt INR 123456.05
		{
			ID:     "axis_card_v1",
			Issuer: IssuerAxis,
			Regexp: regexp.MustCompile(
				`(?i)Spent\s+Card\s+no\.\s+([Xx*]*\d+)\s+INR\s+([\d,]+(?:\.\d+)?)\s+([\d-]+)\s+[\d:]+\s+(.+?)\s+Avl\s+Lmt`),
			Account:           CaptureGroup(1),
			Amount:            CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          CaptureGroup(4),
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
		// INR 500.00 debited from A/c no. XX1873 on 22-08-25 UPI/P2M/523467812098/SWIGGY - Axis Bank
		{
			ID:     "axis_upi_debit_v1",
			Issuer: IssuerAxis,
			Regexp: regexp.MustCompile(
				`(?i)INR\s+([\d,]+(?:\.\d+)?)\s+debited\s+from\s+A/c\s+no\.\s+([Xx*]*\d+)\s+on\s+(\d{2}-\d{2}-\d{2})\s+UPI/\w+/(\w+)/(.+?)\s*-\s*Axis\s+Bank`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Reference:         CaptureGroup(4),
			Merchant:          CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.92,
		},

		// --- Kotak Mahindra Bank -------------------------------------------

		// Sent Rs.20.00 from Kotak Bank AC X1714 to q674757157@ybl on 18-10-25.UPI Ref 527512345678
		{
			ID:     "kotak_debit_v1",
			Issuer: IssuerKotak,
			Regexp: regexp.MustCompile(
				`(?i)Sent\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+from\s+Kotak\s+Bank\s+AC\s+([Xx*]*\d+)\s+to\s+(\S+)\s+on\s+([\d-]+)\.?\s*UPI\s+Ref\s+(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Date:              CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.95,
		},
		// Received Rs.900.00 in your Kotak Bank AC X1714 from anitha.r@okicici on 18-10-25.UPI Ref:527509998877
		{
			ID:     "kotak_credit_v1",
			Issuer: IssuerKotak,
			Regexp: regexp.MustCompile(
				`(?i)Received\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+in\s+your\s+Kotak\s+Bank\s+AC\s+([Xx*]*\d+)\s+from\s+(\S+)\s+on\s+([\d-]+)\.?\s*UPI\s+Ref:?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Date:              CaptureGroup(4),
			Reference:         CaptureGroup(5),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.95,
		},

		// --- Generic UPI ---------------------------------------------------

		// Rs.150.00 debited via UPI on 18-10-25 to VPA ramesh.kirana@okhdfcbank Ref No 527512340987
		{
			ID:     "upi_debit_v1",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+debited\s+(?:via|using|through)\s+UPI\s+on\s+([\d/-]+)\s+to\s+(?:VPA\s+)?(\S+)\s+Ref\s+No\.?\s*:?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Date:              CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Reference:         CaptureGroup(4),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.85,
		},
		// Paid Rs.320.00 to SANGEETHA MOBILES via UPI. UPI Ref 527509871234
		{
			ID:     "upi_debit_v2",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)Paid\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+to\s+(.+?)\s+(?:via|using)\s+UPI.*?Ref\.?\s*:?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Reference:         CaptureGroup(3),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.80,
		},
		// Rs.900.00 credited via UPI on 18-10-25 from anitha.r@okicici Ref No 527509990011
		{
			ID:     "upi_credit_v1",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)Rs\.?\s*([\d,]+(?:\.\d+)?)\s+credited\s+(?:via|using|through)\s+UPI\s+on\s+([\d/-]+)\s+from\s+(?:VPA\s+)?(\S+)\s+Ref\s+No\.?\s*:?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Date:              CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Reference:         CaptureGroup(4),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.85,
		},
		// Generic fallback: an amount, a debit/credit keyword somewhere, and a
		// reference number. Low prior; field bonuses decide whether it wins.
		{
			ID:     "upi_generic_v1",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)(?:Rs\.?|INR|₹)\s*([\d,]+(?:\.\d+)?)\s.*?(?:debited|credited|paid|sent|received).*?Ref\w*\.?\s*:?\s*No?\.?\s*(\w{6,})`),
			Amount:         CaptureGroup(1),
			Reference:      CaptureGroup(2),
			Merchant:       Heuristic(),
			BaseConfidence: 0.60,
		},

		// --- Bill payment / recharge ---------------------------------------

		// Payment of Rs.599.00 towards Airtel Postpaid is successful. Ref 2310185504321
		{
			ID:     "billpay_v1",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)Payment\s+of\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+towards\s+(.+?)\s+is\s+successful\.?\s*(?:Ref\.?\s*:?\s*(\w+))?`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Reference:         CaptureGroup(3),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.85,
		},
		// Recharge of Rs 239.00 for 98XXXXXX21 is successful. Ref no 2310187812345
		{
			ID:     "recharge_v1",
			Issuer: IssuerUPI,
			Regexp: regexp.MustCompile(
				`(?i)Recharge\s+of\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+for\s+(\S+)\s+is\s+successful\.?\s*(?:Ref\.?\s*no\.?\s*:?\s*(\w+))?`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Reference:         CaptureGroup(3),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.85,
		},

		// --- ATM withdrawal ------------------------------------------------

		// Rs.2000.00 withdrawn from A/c XX8696 at HDFC BANK ATM KORAMANGALA on 18-10-25 Avl bal Rs.12,345.10
		{
			ID:     "atm_withdrawal_v1",
			Issuer: IssuerATM,
			Regexp: regexp.MustCompile(
				`(?i)(?:Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)\s+withdrawn\s+from\s+(?:A/c|Card)\s+([Xx*]*\d+)\s+at\s+(.+?)\s+on\s+([\d/:-]+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Merchant:          CaptureGroup(3),
			Date:              CaptureGroup(4),
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
		// ATM Cash Rs.5000 withdrawn using Card XX7215 on 22-08-25
		{
			ID:     "atm_withdrawal_v2",
			Issuer: IssuerATM,
			Regexp: regexp.MustCompile(
				`(?i)ATM\s+Cash\s+Rs\.?\s*([\d,]+(?:\.\d+)?)\s+withdrawn\s+using\s+Card\s+([Xx*]*\d+)\s+on\s+([\d/-]+)`),
			Amount:            CaptureGroup(1),
			Account:           CaptureGroup(2),
			Date:              CaptureGroup(3),
			Merchant:          Absent,
			Reference:         Synthesize(),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.88,
		},

		// --- Receipt screenshots (OCR text) --------------------------------
		//
		// Flagged Receipt so they run only through the receipt engine: the
		// channel comes from the image source hint and there is no generic
		// fallback tier. An SMS merely mentioning the app still goes through
		// the UPI tier.

		// ₹150 Paid to Ramesh Kirana Store ramesh.kirana@okhdfcbank 18-10-25 UPI transaction ID 527512340987 HDFC Bank 8696
		{
			ID:      "gpay_receipt_v1",
			Receipt: true,
			Issuer:  IssuerGPay,
			Regexp: regexp.MustCompile(
				`(?i)(?:₹|Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)\s+Paid\s+to\s+(.+?)\s+(?:\S+@\S+\s+)?([\d/-]+)\s+UPI\s+transaction\s+ID\s*:?\s*(\w+)(?:\s+(.+?Bank)\s+[Xx*-]*(\d+))?`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Date:              CaptureGroup(3),
			Reference:         CaptureGroup(4),
			BankName:          CaptureGroup(5),
			Account:           CaptureGroup(6),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
		// ₹900 Received from Anitha R anitha.r@okicici 18-10-25 UPI transaction ID 527509990011
		{
			ID:      "gpay_receipt_credit_v1",
			Receipt: true,
			Issuer:  IssuerGPay,
			Regexp: regexp.MustCompile(
				`(?i)(?:₹|Rs\.?|INR)\s*([\d,]+(?:\.\d+)?)\s+Received\s+from\s+(.+?)\s+(?:\S+@\S+\s+)?([\d/-]+)\s+UPI\s+transaction\s+ID\s*:?\s*(\w+)`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Date:              CaptureGroup(3),
			Reference:         CaptureGroup(4),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.90,
		},
		// Paid to SANGEETHA MOBILES ₹320 Transaction ID T2310181204558891 Debited from HDFC Bank XXXX8696
		{
			ID:      "phonepe_receipt_v1",
			Receipt: true,
			Issuer:  IssuerPhonPe,
			Regexp: regexp.MustCompile(
				`(?i)Paid\s+to\s+(.+?)\s+(?:₹|Rs\.?)\s*([\d,]+(?:\.\d+)?)\s+Transaction\s+ID\s*:?\s*(\w+)(?:\s+Debited\s+from\s+(.+?Bank)\s+[Xx*-]*(\d+))?`),
			Merchant:          CaptureGroup(1),
			Amount:            CaptureGroup(2),
			Reference:         CaptureGroup(3),
			BankName:          CaptureGroup(4),
			Account:           CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
		// Received from Anitha R ₹900 Transaction ID T2310181211034412 Credited to Kotak Mahindra Bank X1714
		{
			ID:      "phonepe_receipt_credit_v1",
			Receipt: true,
			Issuer:  IssuerPhonPe,
			Regexp: regexp.MustCompile(
				`(?i)Received\s+from\s+(.+?)\s+(?:₹|Rs\.?)\s*([\d,]+(?:\.\d+)?)\s+Transaction\s+ID\s*:?\s*(\w+)(?:\s+Credited\s+to\s+(.+?Bank)\s+[Xx*-]*(\d+))?`),
			Merchant:          CaptureGroup(1),
			Amount:            CaptureGroup(2),
			Reference:         CaptureGroup(3),
			BankName:          CaptureGroup(4),
			Account:           CaptureGroup(5),
			DeclaredDirection: model.DirectionCredit,
			BaseConfidence:    0.90,
		},
		// ₹320 Paid Successfully To: SANGEETHA MOBILES UPI Ref No: 527509871234 From: Paytm Payments Bank 91XXXXXX21
		{
			ID:      "paytm_receipt_v1",
			Receipt: true,
			Issuer:  IssuerPaytm,
			Regexp: regexp.MustCompile(
				`(?i)(?:₹|Rs\.?)\s*([\d,]+(?:\.\d+)?)\s+Paid\s+Successfully\s+To\s*:?\s*(.+?)\s+UPI\s+Ref\s+No\s*:?\s*(\w+)(?:\s+From\s*:?\s*(.+?Bank)\s+[Xx*-]*(\d+))?`),
			Amount:            CaptureGroup(1),
			Merchant:          CaptureGroup(2),
			Reference:         CaptureGroup(3),
			BankName:          CaptureGroup(4),
			Account:           CaptureGroup(5),
			DeclaredDirection: model.DirectionDebit,
			BaseConfidence:    0.90,
		},
	}
}
