package mailer

import "html/template"

// templateData is the single context rendered into every email body.
type templateData struct {
	Name          string
	Package       string
	TotalAmount   int
	Downpayment   int
	Date          string
	TimeStart     string
	ExtensionText string
	Reason        string
	BusinessEmail string
	GcashNumber   string
	GcashName     string
}

var receivedTmpl = template.Must(template.New("received").Parse(`
<div style='font-family: "Quicksand", Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #fff4e6; padding: 20px; border-radius: 10px;'>
    <h2 style='font-family: "League Spartan", Arial, sans-serif; color: #3b2c28; text-align: center; margin-bottom: 20px;'>Thank you for choosing it's ouR Studio!</h2>

    <p style='color: #3b2c28; line-height: 1.6;'>To confirm your booking, a 50% down payment is required. After your studio session, the remaining amount must be paid.</p>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #bf6a39;'>
        <p style='color: #3b2c28; margin: 5px 0;'><strong style='color: #bf6a39;'>{{.Package}}</strong>: ₱{{.TotalAmount}}</p>
        <p style='color: #3b2c28; margin: 5px 0;'><strong style='color: #bf6a39;'>Down payment</strong>: ₱{{.Downpayment}}</p>
    </div>

    <p style='color: #3b2c28; line-height: 1.6;'>If you haven't made your down payment yet, please send your payment to the following account:</p>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; text-align: center; border-left: 4px solid #bf6a39;'>
        <p style='color: #3b2c28; margin: 5px 0;'><strong style='color: #bf6a39;'>GCASH</strong><br>
        {{.GcashName}} - {{.GcashNumber}}</p>
    </div>

    <p style='color: #3b2c28; line-height: 1.6;'>Once done, kindly reply to this email with your proof of payment for validation.</p>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #8b5e3b;'>
        <p style='color: #3b2c28; margin: 5px 0;'><strong style='color: #8b5e3b;'>Please Note!</strong></p>
        <ul style='color: #3b2c28; padding-left: 20px;'>
            <li style='margin: 5px 0;'>To confirm your booking, kindly send the down payment until 11:59 pm TONIGHT.</li>
            <li style='margin: 5px 0;'>Send the proof of payment to validate.</li>
            <li style='margin: 5px 0;'>If you cancel or reschedule 1-2 days prior, it will be non-refundable.</li>
        </ul>
    </div>

    <p style='color: #3b2c28; text-align: center; margin-top: 20px;'>Thank you for choosing it's ouR Studio!</p>
    <p style='color: #8b5e3b; text-align: center; font-size: 12px;'>We can't wait to capture your special moments.</p>
</div>`))

var confirmedTmpl = template.Must(template.New("confirmed").Parse(`
<div style='font-family: "Quicksand", Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #fff4e6; padding: 20px; border-radius: 10px;'>
    <h2 style='font-family: "League Spartan", Arial, sans-serif; color: #3b2c28; text-align: center; margin-bottom: 20px;'>Good day, {{.Name}}!</h2>
    <p style='color: #3b2c28; text-align: center; font-size: 18px;'>Your booking with it's ouR studio has been confirmed!</p>

    <div style='background-color: #fff; padding: 15px; margin: 20px 0; border-radius: 5px; border-left: 4px solid #bf6a39; text-align: center;'>
        <h3 style='font-family: "League Spartan", Arial, sans-serif; color: #bf6a39; margin: 5px 0;'>Appointment Details</h3>
        <p style='color: #3b2c28; margin: 5px 0;'><strong>Date:</strong> {{.Date}}</p>
        <p style='color: #3b2c28; margin: 5px 0;'><strong>Time:</strong> {{.TimeStart}}</p>
    </div>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #bf6a39;'>
        <h3 style='font-family: "League Spartan", Arial, sans-serif; color: #bf6a39; margin: 5px 0;'>Package Details</h3>
        <p style='color: #3b2c28; margin: 5px 0;'><strong>Package:</strong> {{.Package}}</p>
        {{if .ExtensionText}}<p style='color: #3b2c28; margin: 5px 0;'><strong>Extension:</strong> {{.ExtensionText}}</p>{{end}}
        <h3 style='font-family: "League Spartan", Arial, sans-serif; color: #bf6a39; margin: 15px 0 5px 0;'>Location</h3>
        <p style='color: #3b2c28; margin: 5px 0;'><strong>Address:</strong> FJ Center 15 Tongco Maysan, Valenzuela City</p>
        <p style='color: #3b2c28; margin: 5px 0;'><strong>Landmark:</strong> PLV, Cebuana, Mr. DIY, and Ever</p>
    </div>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #8b5e3b;'>
        <h3 style='font-family: "League Spartan", Arial, sans-serif; color: #8b5e3b; margin: 5px 0;'>Important Reminders</h3>
        <ul style='color: #3b2c28; padding-left: 20px;'>
            <li style='margin: 8px 0;'>To maximize your time, please arrive at least 15 minutes before your appointment.</li>
            <li style='margin: 8px 0;'>Your time will begin on time and cannot be adjusted as there will be another client after you.</li>
            <li style='margin: 8px 0;'>If you are late, your time will be deducted based on how many minutes you are late.</li>
            <li style='margin: 8px 0;'>If you miss your appointment and do not arrive on time, it will be considered cancelled and non-refundable.</li>
            <li style='margin: 8px 0;'>Rescheduling is allowed 5 days before your appointment.</li>
            <li style='margin: 8px 0;'>Cancelling and rebooking is not allowed 1-2 days prior to your appointment.</li>
        </ul>
    </div>

    <p style='color: #3b2c28; text-align: center; margin-top: 20px;'>If you have any questions or concerns, please don't hesitate to inform us!</p>
    <p style='color: #3b2c28; text-align: center; font-weight: bold;'>Thank you for choosing it's ouR Studio!</p>
    <p style='color: #8b5e3b; text-align: center; font-size: 14px;'>We look forward to capturing your special moments.</p>
</div>`))

var rejectedTmpl = template.Must(template.New("rejected").Parse(`
<div style='font-family: "Quicksand", Arial, sans-serif; max-width: 600px; margin: 0 auto; background-color: #fff4e6; padding: 20px; border-radius: 10px;'>
    <h2 style='font-family: "League Spartan", Arial, sans-serif; color: #3b2c28; text-align: center; margin-bottom: 20px;'>Booking Update</h2>

    <p style='color: #3b2c28; line-height: 1.6;'>Dear {{.Name}},</p>

    <p style='color: #3b2c28; line-height: 1.6;'>We regret to inform you that your booking has been rejected.</p>

    <div style='background-color: #fff; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #bf6a39;'>
        <p style='color: #3b2c28; margin: 5px 0;'><strong style='color: #bf6a39;'>Reason:</strong> {{.Reason}}</p>

        <h3 style='font-family: "League Spartan", Arial, sans-serif; color: #bf6a39; margin: 15px 0 5px 0;'>Booking Details</h3>
        <ul style='color: #3b2c28; padding-left: 20px;'>
            <li style='margin: 5px 0;'><strong>Package:</strong> {{.Package}}</li>
            <li style='margin: 5px 0;'><strong>Date:</strong> {{.Date}}</li>
            <li style='margin: 5px 0;'><strong>Time:</strong> {{.TimeStart}}</li>
        </ul>
    </div>

    <p style='color: #3b2c28; line-height: 1.6;'>If you have any questions, please contact us at {{.BusinessEmail}}</p>

    <p style='color: #3b2c28; text-align: center; margin-top: 20px;'>We hope to serve you in the future.</p>
    <p style='color: #8b5e3b; text-align: center; font-size: 12px;'>Thank you for considering it's ouR Studio.</p>
</div>`))
