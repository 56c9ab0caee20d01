package elbow

// Case identifies the routing template that produced a path.
type Case string

const (
	Case1   Case = "1"    // no facing on either end
	Case21  Case = "2.1"  // +x to +y, end behind and below
	Case22  Case = "2.2"  // +x to +y, end ahead and above
	Case23  Case = "2.3"  // +x to +y, x aligned
	Case24  Case = "2.4"  // +x to +y, end ahead
	Case25  Case = "2.5"  // +x to +y, end behind, within one overshoot vertically
	Case26  Case = "2.6"  // +x to +y, end behind and well above
	Case3   Case = "3"    // +x to +x
	Case31  Case = "3.1"  // +x to +x, y aligned
	Case411 Case = "4.11" // +x to -y, x aligned, end below
	Case412 Case = "4.12" // +x to -y, x aligned, end above
	Case42  Case = "4.2"  // +x to -y, end ahead and below
	Case43  Case = "4.3"  // +x to -y, end behind and below
	Case44  Case = "4.4"  // +x to -y, end behind and above
	Case45  Case = "4.5"  // +x to -y, same y
	Case46  Case = "4.6"  // +x to -y, remaining positions
	Case5   Case = "5"    // +x to -x, overshoots overlap
	Case6   Case = "6"    // +x to -x, same y, end ahead
	Case7   Case = "7"    // +x to -x, same y, end behind
	Case8   Case = "8"    // generic midpoint route
)

// CaseInfo describes one routing template.
type CaseInfo struct {
	Case        Case
	Start       string // facing tag, or "any"
	End         string
	Condition   string
	Description string
}

var caseTable = []CaseInfo{
	{Case1, "none", "none", "", "split at mid x"},
	{Case21, "x+", "y+", "x1>x2 and y1<y2", "out, down past end, back over"},
	{Case22, "x+", "y+", "x1<x2 and y1>y2", "single corner above end"},
	{Case23, "x+", "y+", "x aligned", "out, down past end, back over"},
	{Case24, "x+", "y+", "x1<x2", "mid x, then past end"},
	{Case25, "x+", "y+", "y1<=y2+o", "out, one overshoot down, across"},
	{Case26, "x+", "y+", "otherwise", "out, mid y, across"},
	{Case3, "x+", "x+", "y not aligned", "common x beyond both overshoots"},
	{Case31, "x+", "x+", "y aligned", "loop over the end"},
	{Case411, "x+", "y-", "x aligned, y1<=y2", "out, mid y, back"},
	{Case412, "x+", "y-", "x aligned, y1>y2", "out, above end, back"},
	{Case42, "x+", "y-", "x1<x2 and y1<y2", "single corner above end"},
	{Case43, "x+", "y-", "x1>x2 and y1<y2", "out, mid y, back"},
	{Case44, "x+", "y-", "x1>x2 and y1>y2", "out, above end, back"},
	{Case45, "x+", "y-", "y1==y2", "out, one overshoot up, across"},
	{Case46, "x+", "y-", "otherwise", "mid x, above end"},
	{Case5, "x+", "x-", "x1+o>=x2-o, y1!=y2", "S-bend through mid y"},
	{Case6, "x+", "x-", "y1==y2, x2>x1", "hop over, come back down"},
	{Case7, "x+", "x-", "y1==y2", "hop over, come back down"},
	{Case8, "any", "any", "no other template", "mid x route through end target"},
}

// Cases returns every routing template in evaluation order.
func Cases() []CaseInfo {
	out := make([]CaseInfo, len(caseTable))
	copy(out, caseTable)
	return out
}
