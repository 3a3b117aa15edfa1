package bot

// WelcomeText greets the operator on /start.
const WelcomeText = "Welcome to the Finance Tracker bot! Send your income or expense details as per the specified formats."

// HelpText enumerates the input grammars. Field order and labels are part of
// the interface operators rely on; do not reword them.
const HelpText = "Here are the supported commands and formats:\n" +
	"\n" +
	"*Income entry:*\n" +
	"`YYYY-MM-DD: Customer: Amount: Payment Mode: Channel Selling Rate:`\n" +
	"\n" +
	"*Expense entry:*\n" +
	"`Expense YYYY-MM-DD: Expense Type: Amount: Mode of Payment: Period of Payment:`\n" +
	"\n" +
	"*New customer:*\n" +
	"`Name: Mob: Service: Date:`\n" +
	"\n" +
	"*Statistics:* Send `income`, `expense` or `profit` and then specify a date range in the format `YYYY-MM-DD to YYYY-MM-DD`."
