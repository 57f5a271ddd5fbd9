package render

// documentShell is the outer document every variant renders into. It owns the
// capture anchor: a single root element with a fixed ID, in-flow for previews
// and off-screen (but laid out) otherwise.
const documentShell = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Number}}</title>
  <style>
    :root {
      --brand: {{.BrandColor}};
      --ink: #1a1f36;
      --muted: #697386;
      --line: #e3e8ee;
      --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 0;
      font-family: var(--font);
      color: var(--ink);
      background: #ffffff;
      -webkit-font-smoothing: antialiased;
    }
    table { border-collapse: collapse; width: 100%; }
    {{template "style" .}}
  </style>
</head>
<body>
  <div id="{{.AnchorID}}" style="{{.AnchorStyle}}">
{{template "content" .}}
  </div>
</body>
</html>
`

const classicContent = `{{define "style"}}
    .sheet { width: 720px; margin: 0 auto; padding: 48px; }
    .band { background: var(--brand); color: #fff; padding: 24px 32px; display: flex; justify-content: space-between; align-items: center; }
    .band h1 { margin: 0; font-size: 22px; }
    .band .store { text-align: right; font-size: 13px; }
    .meta { display: flex; justify-content: space-between; margin: 28px 0; font-size: 13px; }
    .meta .label { color: var(--muted); text-transform: uppercase; font-size: 11px; margin-bottom: 4px; }
    th { text-align: left; font-size: 11px; text-transform: uppercase; color: var(--muted); border-bottom: 2px solid var(--brand); padding: 8px 0; }
    td { padding: 12px 0; border-bottom: 1px solid var(--line); font-size: 13px; }
    .num { text-align: right; }
    .totals { margin-top: 16px; margin-left: auto; width: 260px; font-size: 13px; }
    .totals .row { display: flex; justify-content: space-between; padding: 5px 0; }
    .totals .grand { border-top: 2px solid var(--brand); margin-top: 6px; padding-top: 8px; font-weight: 700; font-size: 15px; }
    .foot { margin-top: 40px; display: flex; justify-content: space-between; font-size: 12px; color: var(--muted); }
    .sign { text-align: center; }
    .sign img { max-height: 48px; }
    .sign .name { color: var(--ink); font-weight: 600; margin-top: 28px; border-top: 1px solid var(--line); padding-top: 4px; }
{{end}}{{define "content"}}
    <div class="sheet">
      <div class="band">
        <div>
          <h1>INVOICE</h1>
          <div>{{.Invoice.Number}}</div>
        </div>
        <div class="store">
          {{if .Store.LogoURL}}<img src="{{.Store.LogoURL}}" alt="{{.Store.Name}}" style="max-height:36px;"><br>{{end}}
          <strong>{{.Store.Name}}</strong><br>
          {{.Store.Address}}<br>
          {{if .Store.WhatsApp}}WA: {{.Store.WhatsApp}}{{end}}
        </div>
      </div>
      <div class="meta">
        <div>
          <div class="label">Bill To</div>
          <strong>{{.Invoice.Customer.Name}}</strong><br>
          {{.Invoice.Customer.Address}}
        </div>
        <div>
          <div class="label">Invoice Date</div>
          {{formatDate .Invoice.IssuedAt}}
          <div class="label" style="margin-top:10px;">Due Date</div>
          {{formatDate .Invoice.DueAt}}
        </div>
      </div>
      <table>
        <thead>
          <tr><th>Description</th><th class="num">Qty / Weight</th><th class="num">Price</th><th class="num">Amount</th></tr>
        </thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Rate}}/g{{else}}{{.UnitPrice}}{{end}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="totals">
        <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
        <div class="row"><span>Shipping</span><span>{{.Shipping}}</span></div>
        {{if .ShowTax}}<div class="row"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
        <div class="row grand"><span>Total</span><span>{{.Total}}</span></div>
      </div>
      <div class="foot">
        <div>
          {{if .Invoice.Note}}<div><strong>Note</strong><br>{{.Invoice.Note}}</div>{{end}}
          {{if .Store.PaymentMethod}}<div style="margin-top:8px;"><strong>Payment</strong><br>{{.Store.PaymentMethod}}</div>{{end}}
        </div>
        <div class="sign">
          {{if .Store.SignatureURL}}<img src="{{.Store.SignatureURL}}" alt="">{{end}}
          <div class="name">{{.Store.AdminName}}</div>
          <div>{{.Store.AdminTitle}}</div>
        </div>
      </div>
    </div>
{{end}}`

const simpleContent = `{{define "style"}}
    .page { width: 680px; margin: 0 auto; padding: 64px 32px; }
    .top { display: flex; justify-content: space-between; margin-bottom: 48px; }
    .top h1 { margin: 0; font-size: 15px; letter-spacing: 4px; color: var(--brand); }
    .top .no { color: var(--muted); font-size: 13px; }
    .parties { display: flex; gap: 64px; margin-bottom: 40px; font-size: 13px; }
    .parties .label { font-size: 10px; letter-spacing: 1px; text-transform: uppercase; color: var(--muted); margin-bottom: 6px; }
    th { text-align: left; font-weight: 500; font-size: 12px; color: var(--muted); padding: 6px 0; border-bottom: 1px solid var(--ink); }
    td { padding: 10px 0; font-size: 13px; border-bottom: 1px solid var(--line); }
    .num { text-align: right; }
    .sums { width: 220px; margin-left: auto; margin-top: 20px; font-size: 13px; }
    .sums div { display: flex; justify-content: space-between; padding: 4px 0; }
    .sums .total { font-weight: 600; border-top: 1px solid var(--ink); margin-top: 6px; padding-top: 8px; }
    .closing { margin-top: 56px; font-size: 12px; color: var(--muted); }
{{end}}{{define "content"}}
    <div class="page">
      <div class="top">
        <div>
          <h1>INVOICE</h1>
          <div class="no">{{.Invoice.Number}}</div>
        </div>
        <div style="text-align:right;font-size:13px;">
          <strong>{{.Store.Name}}</strong><br>
          <span style="color:var(--muted);">{{.Store.Address}}</span>
        </div>
      </div>
      <div class="parties">
        <div>
          <div class="label">Billed To</div>
          {{.Invoice.Customer.Name}}<br>
          <span style="color:var(--muted);">{{.Invoice.Customer.Address}}</span>
        </div>
        <div>
          <div class="label">Issued</div>
          {{formatDate .Invoice.IssuedAt}}
        </div>
        <div>
          <div class="label">Due</div>
          {{formatDate .Invoice.DueAt}}
        </div>
      </div>
      <table>
        <thead><tr><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr></thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}{{if .Buyback}} <span style="color:var(--muted);">(buyback)</span>{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Rate}}{{else}}{{.UnitPrice}}{{end}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="sums">
        <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
        <div><span>Shipping</span><span>{{.Shipping}}</span></div>
        {{if .ShowTax}}<div><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
        <div class="total"><span>Total</span><span>{{.Total}}</span></div>
      </div>
      <div class="closing">
        {{if .Invoice.Note}}{{.Invoice.Note}}<br>{{end}}
        {{if .Store.PaymentMethod}}Payment: {{.Store.PaymentMethod}}{{end}}
      </div>
    </div>
{{end}}`

const modernContent = `{{define "style"}}
    .wrap { width: 720px; margin: 0 auto; display: flex; }
    .rail { width: 12px; background: var(--brand); min-height: 980px; }
    .main { flex: 1; padding: 56px 40px; }
    .main h1 { margin: 0 0 4px; font-size: 34px; font-weight: 800; color: var(--brand); }
    .sub { color: var(--muted); font-size: 13px; margin-bottom: 36px; }
    .grid { display: flex; justify-content: space-between; margin-bottom: 32px; font-size: 13px; }
    .grid .label { font-weight: 700; font-size: 11px; text-transform: uppercase; color: var(--brand); margin-bottom: 4px; }
    th { text-align: left; background: var(--brand); color: #fff; font-size: 11px; text-transform: uppercase; padding: 10px 12px; }
    td { padding: 12px; font-size: 13px; border-bottom: 1px solid var(--line); }
    tr:nth-child(even) td { background: #f7f9fc; }
    .num { text-align: right; }
    .summary { margin-top: 24px; margin-left: auto; width: 280px; font-size: 13px; }
    .summary .row { display: flex; justify-content: space-between; padding: 6px 12px; }
    .summary .grand { background: var(--brand); color: #fff; font-weight: 700; font-size: 15px; padding: 10px 12px; }
{{end}}{{define "content"}}
    <div class="wrap">
      <div class="rail"></div>
      <div class="main">
        <h1>Invoice</h1>
        <div class="sub">{{.Invoice.Number}} &middot; {{.Store.Name}}{{if .Store.Tagline}} &middot; {{.Store.Tagline}}{{end}}</div>
        <div class="grid">
          <div>
            <div class="label">Customer</div>
            {{.Invoice.Customer.Name}}<br>{{.Invoice.Customer.Address}}
          </div>
          <div>
            <div class="label">Issued</div>
            {{formatDate .Invoice.IssuedAt}}
          </div>
          <div>
            <div class="label">Due</div>
            {{formatDate .Invoice.DueAt}}
          </div>
          <div>
            <div class="label">Status</div>
            {{.Invoice.Status}}
          </div>
        </div>
        <table>
          <thead><tr><th>Description</th><th class="num">Qty</th><th class="num">Unit</th><th class="num">Amount</th></tr></thead>
          <tbody>
            {{range .Items}}
            <tr>
              <td>{{.Description}}</td>
              <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
              <td class="num">{{if .Buyback}}{{.Rate}}/g{{else}}{{.UnitPrice}}{{end}}</td>
              <td class="num">{{.Amount}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
        <div class="summary">
          <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
          <div class="row"><span>Shipping</span><span>{{.Shipping}}</span></div>
          {{if .ShowTax}}<div class="row"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
          <div class="grand"><span>Total</span> <span style="float:right;">{{.Total}}</span></div>
        </div>
        {{if .Invoice.Note}}<p style="margin-top:32px;font-size:12px;color:var(--muted);">{{.Invoice.Note}}</p>{{end}}
      </div>
    </div>
{{end}}`

const elegantContent = `{{define "style"}}
    .paper { width: 700px; margin: 0 auto; padding: 72px 48px; font-family: Georgia, "Times New Roman", serif; }
    .paper h1 { font-size: 28px; font-weight: 400; letter-spacing: 6px; text-align: center; margin: 0 0 8px; color: var(--brand); }
    .rule { border: 0; border-top: 1px solid var(--brand); width: 120px; margin: 0 auto 40px; }
    .heads { display: flex; justify-content: space-between; font-size: 13px; margin-bottom: 40px; }
    .heads .caption { font-style: italic; color: var(--muted); margin-bottom: 4px; }
    th { font-weight: 400; font-style: italic; text-align: left; color: var(--muted); border-bottom: 1px solid var(--brand); padding: 8px 0; font-size: 13px; }
    td { padding: 12px 0; border-bottom: 1px dotted var(--line); font-size: 13px; }
    .num { text-align: right; }
    .amounts { width: 240px; margin-left: auto; margin-top: 24px; font-size: 13px; }
    .amounts div { display: flex; justify-content: space-between; padding: 5px 0; }
    .amounts .final { border-top: 1px solid var(--brand); border-bottom: 3px double var(--brand); font-weight: 700; margin-top: 6px; padding: 8px 0; }
    .courtesy { text-align: center; margin-top: 64px; font-style: italic; color: var(--muted); font-size: 13px; }
{{end}}{{define "content"}}
    <div class="paper">
      <h1>INVOICE</h1>
      <hr class="rule">
      <div class="heads">
        <div>
          <div class="caption">From</div>
          <strong>{{.Store.Name}}</strong><br>{{.Store.Address}}
        </div>
        <div>
          <div class="caption">To</div>
          <strong>{{.Invoice.Customer.Name}}</strong><br>{{.Invoice.Customer.Address}}
        </div>
        <div>
          <div class="caption">Details</div>
          {{.Invoice.Number}}<br>
          {{formatDate .Invoice.IssuedAt}} &mdash; {{formatDate .Invoice.DueAt}}
        </div>
      </div>
      <table>
        <thead><tr><th>Description</th><th class="num">Quantity</th><th class="num">Price</th><th class="num">Amount</th></tr></thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{if .Buyback}}{{.Gram}} grams{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Rate}} per gram{{else}}{{.UnitPrice}}{{end}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="amounts">
        <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
        <div><span>Shipping</span><span>{{.Shipping}}</span></div>
        {{if .ShowTax}}<div><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
        <div class="final"><span>Total</span><span>{{.Total}}</span></div>
      </div>
      <div class="courtesy">
        {{if .Invoice.Note}}{{.Invoice.Note}}{{else}}Thank you for your business.{{end}}
      </div>
    </div>
{{end}}`

const boldContent = `{{define "style"}}
    .hero { background: var(--brand); color: #fff; padding: 48px 56px; }
    .hero h1 { margin: 0; font-size: 44px; font-weight: 900; text-transform: uppercase; }
    .hero .line { display: flex; justify-content: space-between; margin-top: 12px; font-size: 14px; opacity: .9; }
    .body { width: 720px; margin: 0 auto; padding: 40px 56px; }
    .who { display: flex; justify-content: space-between; font-size: 13px; margin-bottom: 32px; }
    .who .tag { font-weight: 800; text-transform: uppercase; font-size: 11px; color: var(--brand); margin-bottom: 6px; }
    th { text-align: left; font-size: 12px; font-weight: 800; text-transform: uppercase; padding: 10px 0; border-bottom: 4px solid var(--brand); }
    td { padding: 14px 0; font-size: 14px; border-bottom: 1px solid var(--line); }
    .num { text-align: right; }
    .big-total { margin-top: 28px; display: flex; justify-content: flex-end; }
    .big-total .card { background: var(--brand); color: #fff; padding: 20px 28px; min-width: 280px; }
    .big-total .card .row { display: flex; justify-content: space-between; font-size: 13px; padding: 3px 0; opacity: .85; }
    .big-total .card .grand { font-size: 24px; font-weight: 900; margin-top: 8px; display: flex; justify-content: space-between; opacity: 1; }
{{end}}{{define "content"}}
    <div class="hero">
      <h1>Invoice</h1>
      <div class="line">
        <span>{{.Invoice.Number}}</span>
        <span>{{.Store.Name}}</span>
        <span>Due {{formatDate .Invoice.DueAt}}</span>
      </div>
    </div>
    <div class="body">
      <div class="who">
        <div>
          <div class="tag">Bill To</div>
          <strong>{{.Invoice.Customer.Name}}</strong><br>{{.Invoice.Customer.Address}}
        </div>
        <div>
          <div class="tag">From</div>
          {{.Store.Name}}<br>{{.Store.Address}}{{if .Store.WhatsApp}}<br>{{.Store.WhatsApp}}{{end}}
        </div>
      </div>
      <table>
        <thead><tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr></thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Rate}}/g{{else}}{{.UnitPrice}}{{end}}</td>
            <td class="num"><strong>{{.Amount}}</strong></td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="big-total">
        <div class="card">
          <div class="row"><span>Subtotal</span><span>{{.Subtotal}}</span></div>
          <div class="row"><span>Shipping</span><span>{{.Shipping}}</span></div>
          {{if .ShowTax}}<div class="row"><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
          <div class="grand"><span>Total</span><span>{{.Total}}</span></div>
        </div>
      </div>
      {{if .Invoice.Note}}<p style="margin-top:28px;font-size:12px;color:var(--muted);">{{.Invoice.Note}}</p>{{end}}
    </div>
{{end}}`

const compactContent = `{{define "style"}}
    .slip { width: 560px; margin: 0 auto; padding: 32px; font-size: 12px; }
    .head { border-bottom: 3px solid var(--brand); padding-bottom: 10px; margin-bottom: 14px; display: flex; justify-content: space-between; align-items: baseline; }
    .head h1 { margin: 0; font-size: 16px; color: var(--brand); }
    .pair { display: flex; justify-content: space-between; margin-bottom: 2px; }
    .pair .k { color: var(--muted); }
    th { text-align: left; font-size: 10px; text-transform: uppercase; color: var(--muted); padding: 5px 0; border-bottom: 1px solid var(--ink); }
    td { padding: 6px 0; border-bottom: 1px dashed var(--line); }
    .num { text-align: right; }
    .tots { margin-top: 10px; }
    .tots .pair { padding: 2px 0; }
    .tots .grand { font-weight: 700; font-size: 14px; color: var(--brand); border-top: 1px solid var(--ink); margin-top: 4px; padding-top: 6px; }
{{end}}{{define "content"}}
    <div class="slip">
      <div class="head">
        <h1>{{.Store.Name}}</h1>
        <span>{{.Invoice.Number}}</span>
      </div>
      <div class="pair"><span class="k">Customer</span><span>{{.Invoice.Customer.Name}}</span></div>
      <div class="pair"><span class="k">Issued</span><span>{{formatDate .Invoice.IssuedAt}}</span></div>
      <div class="pair"><span class="k">Due</span><span>{{formatDate .Invoice.DueAt}}</span></div>
      <table style="margin-top:12px;">
        <thead><tr><th>Item</th><th class="num">Qty</th><th class="num">Amount</th></tr></thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}{{if .Buyback}} ({{.Gram}} g @ {{.Rate}}){{end}}</td>
            <td class="num">{{if .Buyback}}&mdash;{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <div class="tots">
        <div class="pair"><span class="k">Subtotal</span><span>{{.Subtotal}}</span></div>
        <div class="pair"><span class="k">Shipping</span><span>{{.Shipping}}</span></div>
        {{if .ShowTax}}<div class="pair"><span class="k">{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
        <div class="pair grand"><span>Total</span><span>{{.Total}}</span></div>
      </div>
      {{if .Store.PaymentMethod}}<div style="margin-top:14px;color:var(--muted);">Pay via {{.Store.PaymentMethod}}</div>{{end}}
      {{if .Invoice.Note}}<div style="margin-top:6px;color:var(--muted);">{{.Invoice.Note}}</div>{{end}}
    </div>
{{end}}`

const creativeContent = `{{define "style"}}
    .stage { width: 720px; margin: 0 auto; position: relative; padding-bottom: 48px; }
    .angle { background: linear-gradient(135deg, var(--brand) 0%, var(--brand) 60%, transparent 60%); padding: 48px 56px 72px; color: #fff; }
    .angle h1 { margin: 0; font-size: 30px; font-weight: 800; }
    .angle .store { font-size: 13px; margin-top: 6px; opacity: .9; }
    .float-card { background: #fff; box-shadow: 0 6px 24px rgba(0,0,0,.12); border-radius: 8px; padding: 20px 24px; position: absolute; top: 110px; right: 56px; font-size: 12px; width: 220px; }
    .float-card .k { color: var(--muted); }
    .float-card .v { float: right; }
    .content { padding: 64px 56px 0; }
    th { text-align: left; font-size: 11px; text-transform: uppercase; color: var(--brand); padding: 8px 0; border-bottom: 2px dashed var(--brand); }
    td { padding: 12px 0; font-size: 13px; border-bottom: 1px solid var(--line); }
    .num { text-align: right; }
    .balance { margin-top: 24px; margin-left: auto; width: 260px; font-size: 13px; }
    .balance div { display: flex; justify-content: space-between; padding: 5px 0; }
    .balance .due { background: var(--brand); color: #fff; border-radius: 6px; padding: 10px 14px; font-weight: 700; margin-top: 8px; }
{{end}}{{define "content"}}
    <div class="stage">
      <div class="angle">
        <h1>Invoice {{.Invoice.Number}}</h1>
        <div class="store">{{.Store.Name}}{{if .Store.Tagline}} &mdash; {{.Store.Tagline}}{{end}}</div>
      </div>
      <div class="float-card">
        <div><span class="k">Issued</span><span class="v">{{formatDate .Invoice.IssuedAt}}</span></div>
        <div style="clear:both;"><span class="k">Due</span><span class="v">{{formatDate .Invoice.DueAt}}</span></div>
        <div style="clear:both;"><span class="k">Status</span><span class="v">{{.Invoice.Status}}</span></div>
      </div>
      <div class="content">
        <p style="font-size:13px;"><strong>{{.Invoice.Customer.Name}}</strong><br><span style="color:var(--muted);">{{.Invoice.Customer.Address}}</span></p>
        <table>
          <thead><tr><th>What</th><th class="num">How many</th><th class="num">Each</th><th class="num">Amount</th></tr></thead>
          <tbody>
            {{range .Items}}
            <tr>
              <td>{{.Description}}</td>
              <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
              <td class="num">{{if .Buyback}}{{.Rate}}/g{{else}}{{.UnitPrice}}{{end}}</td>
              <td class="num">{{.Amount}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
        <div class="balance">
          <div><span>Subtotal</span><span>{{.Subtotal}}</span></div>
          <div><span>Shipping</span><span>{{.Shipping}}</span></div>
          {{if .ShowTax}}<div><span>{{.TaxLabel}}</span><span>{{.Tax}}</span></div>{{end}}
          <div class="due"><span>Total</span><span>{{.Total}}</span></div>
        </div>
        {{if .Invoice.Note}}<p style="margin-top:24px;font-size:12px;color:var(--muted);">{{.Invoice.Note}}</p>{{end}}
      </div>
    </div>
{{end}}`

const corporateContent = `{{define "style"}}
    .doc { width: 720px; margin: 0 auto; padding: 56px 48px; }
    .letterhead { display: flex; justify-content: space-between; border-bottom: 2px solid var(--brand); padding-bottom: 20px; margin-bottom: 32px; }
    .letterhead .org { font-size: 18px; font-weight: 700; color: var(--brand); }
    .letterhead .org small { display: block; font-weight: 400; color: var(--muted); font-size: 12px; margin-top: 4px; }
    .letterhead .doctitle { text-align: right; }
    .letterhead .doctitle h1 { margin: 0; font-size: 20px; letter-spacing: 2px; }
    .cols { display: flex; gap: 40px; font-size: 13px; margin-bottom: 28px; }
    .cols .h { font-weight: 700; border-bottom: 1px solid var(--line); margin-bottom: 6px; padding-bottom: 3px; color: var(--brand); }
    th { background: #f0f3f7; text-align: left; font-size: 11px; text-transform: uppercase; padding: 9px 10px; border: 1px solid var(--line); }
    td { padding: 10px; font-size: 13px; border: 1px solid var(--line); }
    .num { text-align: right; }
    .settle { width: 300px; margin-left: auto; margin-top: 0; font-size: 13px; }
    .settle td { border: 1px solid var(--line); }
    .settle .grand td { font-weight: 700; background: #f0f3f7; }
    .legal { margin-top: 48px; font-size: 11px; color: var(--muted); border-top: 1px solid var(--line); padding-top: 12px; display: flex; justify-content: space-between; }
{{end}}{{define "content"}}
    <div class="doc">
      <div class="letterhead">
        <div class="org">
          {{.Store.Name}}
          <small>{{.Store.Address}}{{if .Store.StoreNumber}} &middot; Reg. {{.Store.StoreNumber}}{{end}}</small>
        </div>
        <div class="doctitle">
          <h1>INVOICE</h1>
          <div style="font-size:13px;color:var(--muted);">{{.Invoice.Number}}</div>
        </div>
      </div>
      <div class="cols">
        <div style="flex:1;">
          <div class="h">Customer</div>
          {{.Invoice.Customer.Name}}<br>{{.Invoice.Customer.Address}}
        </div>
        <div style="flex:1;">
          <div class="h">Terms</div>
          Issued: {{formatDate .Invoice.IssuedAt}}<br>
          Due: {{formatDate .Invoice.DueAt}}<br>
          Status: {{.Invoice.Status}}
        </div>
        {{if .Store.PaymentMethod}}
        <div style="flex:1;">
          <div class="h">Payment</div>
          {{.Store.PaymentMethod}}
        </div>
        {{end}}
      </div>
      <table>
        <thead><tr><th style="width:46%;">Description</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Line Total</th></tr></thead>
        <tbody>
          {{range .Items}}
          <tr>
            <td>{{.Description}}</td>
            <td class="num">{{if .Buyback}}{{.Gram}} g{{else}}{{.Quantity}}{{end}}</td>
            <td class="num">{{if .Buyback}}{{.Rate}} / g{{else}}{{.UnitPrice}}{{end}}</td>
            <td class="num">{{.Amount}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
      <table class="settle" style="margin-top:16px;">
        <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
        <tr><td>Shipping</td><td class="num">{{.Shipping}}</td></tr>
        {{if .ShowTax}}<tr><td>{{.TaxLabel}}</td><td class="num">{{.Tax}}</td></tr>{{end}}
        <tr class="grand"><td>Total</td><td class="num">{{.Total}}</td></tr>
      </table>
      <div class="legal">
        <span>{{if .Invoice.Note}}{{.Invoice.Note}}{{else}}{{.Store.StoreDescription}}{{end}}</span>
        <span>{{.Store.AdminName}}{{if .Store.AdminTitle}}, {{.Store.AdminTitle}}{{end}}</span>
      </div>
    </div>
{{end}}`
