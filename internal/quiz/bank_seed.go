package quiz

// seedQuestions is the built-in question bank: 40 curated questions,
// 5 per topic, drawn from the guide Q&A material. The bank keeps the
// drill fully usable without any LLM provider configured.
var seedQuestions = []Question{
	// HTML (5)
	{
		Topic:  "html",
		Text:   "Which element should wrap the primary navigation links of a page?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"<div class=\"nav\">",
			"<nav>",
			"<menu>",
			"<header>",
		},
		Answer:      "<nav>",
		Explanation: "<nav> is the semantic landmark for major navigation blocks. Screen readers expose it directly, so users can jump straight to it.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:       "html",
		Text:        "What attribute makes a <script> download in parallel but run only after the document is parsed, preserving order?",
		Format:      FormatShortText,
		Answer:      "defer",
		Accepted:    []string{"the defer attribute", "script defer"},
		Explanation: "defer downloads the script without blocking parsing and executes it after the DOM is ready, in document order. async also downloads in parallel but runs as soon as it arrives, in any order.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "html",
		Text:   "A screen reader user tabs to an icon-only button. What makes the button announce its purpose?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"A title attribute on the icon",
			"An aria-label on the button",
			"A visually-hidden <h2> nearby",
			"role=\"img\" on the icon",
		},
		Answer:      "An aria-label on the button",
		Explanation: "aria-label gives the control an accessible name. title is unreliable across assistive tech, and a nearby heading is not associated with the button.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "html",
		Text:        "Which built-in form attribute prevents submission when a text input is empty?",
		Format:      FormatShortText,
		Answer:      "required",
		Accepted:    []string{"the required attribute"},
		Explanation: "required triggers native constraint validation: the browser blocks submit and focuses the field with a message, no JavaScript needed.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "html",
		Text:   "Why prefer <button> over a clickable <div> for an action?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"A div cannot receive a click handler",
			"button is focusable, keyboard-activatable, and announced as a button for free",
			"button renders faster",
			"div elements cannot be styled as buttons",
		},
		Answer:      "button is focusable, keyboard-activatable, and announced as a button for free",
		Explanation: "A native button ships focus handling, Enter/Space activation, and the correct role. Recreating all of that on a div is possible but error-prone.",
		Difficulty:  1,
		Source:      SourceBank,
	},

	// CSS (5)
	{
		Topic:  "css",
		Text:   "Two selectors target the same element: .card .title and #main-title. Which wins?",
		Format: FormatMultipleChoice,
		Choices: []string{
			".card .title, because it is more specific",
			"#main-title, because an id outweighs any number of classes",
			"Whichever appears later in the stylesheet",
			"They conflict and neither applies",
		},
		Answer:      "#main-title, because an id outweighs any number of classes",
		Explanation: "Specificity compares (ids, classes, elements) as a tuple: (1,0,0) beats (0,2,0). Source order only breaks exact ties.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "css",
		Text:        "Which box-sizing value makes width include padding and border?",
		Format:      FormatShortText,
		Answer:      "border-box",
		Accepted:    []string{"box-sizing: border-box"},
		Explanation: "With border-box, the declared width is the rendered width; padding and border carve into it instead of expanding the box.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "css",
		Text:   "You need a row of items where the middle one takes all remaining space. The cleanest tool is:",
		Format: FormatMultipleChoice,
		Choices: []string{
			"float: left on the outer items",
			"display: flex with flex: 1 on the middle item",
			"position: absolute on the middle item",
			"display: table-cell",
		},
		Answer:      "display: flex with flex: 1 on the middle item",
		Explanation: "Flexbox distributes free space along one axis. flex: 1 lets the middle item grow while siblings keep their content size.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "css",
		Text:   "Grid or flexbox: which is the better fit for a page-level layout with header, sidebar, content, and footer?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Flexbox, because it handles wrapping",
			"Grid, because the layout is two-dimensional",
			"Either, they are interchangeable",
			"Neither, use floats",
		},
		Answer:      "Grid, because the layout is two-dimensional",
		Explanation: "Grid places items in rows and columns at once (grid-template-areas makes this layout three lines). Flexbox lays out along a single axis at a time.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "css",
		Text:        "What media feature do you query to apply styles only below 600px viewport width?",
		Format:      FormatShortText,
		Answer:      "max-width",
		Accepted:    []string{"max-width: 600px", "@media (max-width: 600px)"},
		Explanation: "@media (max-width: 600px) applies the block when the viewport is 600px or narrower. Mobile-first code usually inverts this with min-width.",
		Difficulty:  1,
		Source:      SourceBank,
	},

	// JavaScript (5)
	{
		Topic:  "javascript",
		Text:   "What does a closure give an inner function?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"A copy of the outer function's variables at call time",
			"Live access to the outer function's variables after the outer function returns",
			"Access to the global scope only",
			"A new this binding",
		},
		Answer:      "Live access to the outer function's variables after the outer function returns",
		Explanation: "A closure captures the variable bindings themselves, not copies. Counters, memoization, and debounce all rely on that persistence.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "javascript",
		Text:        "Which comparison operator checks equality without type coercion?",
		Format:      FormatShortText,
		Answer:      "===",
		Accepted:    []string{"strict equality", "triple equals"},
		Explanation: "=== compares value and type. == coerces operands first, which is why '' == 0 is true and a standing source of bugs.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "javascript",
		Text:   "console.log(a); var a = 1; versus console.log(b); let b = 1; what happens?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Both print undefined",
			"Both throw ReferenceError",
			"var prints undefined, let throws ReferenceError",
			"var throws, let prints undefined",
		},
		Answer:      "var prints undefined, let throws ReferenceError",
		Explanation: "var declarations hoist with an undefined initialization. let hoists too but stays in the temporal dead zone until its declaration runs.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "javascript",
		Text:   "A search box fires a request on every keystroke. Which technique sends one request after the user pauses typing?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Throttling",
			"Debouncing",
			"Memoization",
			"Batching",
		},
		Answer:      "Debouncing",
		Explanation: "Debounce resets a timer on every call and fires once after the quiet period. Throttle instead guarantees at most one call per interval while events keep coming.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "javascript",
		Text:        "In the event loop, which queue runs first after the current task: microtasks (promises) or macrotasks (setTimeout)?",
		Format:      FormatShortText,
		Answer:      "microtasks",
		Accepted:    []string{"microtask", "the microtask queue", "promises"},
		Explanation: "The microtask queue drains completely after each task, before the next macrotask. That is why a resolved promise callback beats setTimeout(fn, 0).",
		Difficulty:  3,
		Source:      SourceBank,
	},

	// APIs (5)
	{
		Topic:  "apis",
		Text:   "Which HTTP method is idempotent and used for full replacement of a resource?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"POST",
			"PUT",
			"PATCH",
			"CONNECT",
		},
		Answer:      "PUT",
		Explanation: "PUT replaces the resource at the target URI; repeating it yields the same state. POST creates (not idempotent) and PATCH applies a partial change.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:       "apis",
		Text:        "What status code tells a client the request was fine but the resource does not exist?",
		Format:      FormatShortText,
		Answer:      "404",
		Accepted:    []string{"404 not found", "not found"},
		Explanation: "404 Not Found. 400 means the request itself was malformed; 410 Gone additionally asserts the resource existed and was removed.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "apis",
		Text:   "fetch() resolved but response.ok is false. What happened?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"A network failure occurred",
			"The server answered with a non-2xx status",
			"The response body is empty",
			"CORS blocked the request",
		},
		Answer:      "The server answered with a non-2xx status",
		Explanation: "fetch only rejects on network-level failure. HTTP errors like 404 or 500 resolve normally, so response.ok (status 200-299) must be checked by hand.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "apis",
		Text:   "The browser sends an OPTIONS request before your PUT with a JSON body. Why?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"The server requested a retry",
			"It is a CORS preflight asking the server to allow the method and headers",
			"HTTP/2 requires it",
			"The cache is being validated",
		},
		Answer:      "It is a CORS preflight asking the server to allow the method and headers",
		Explanation: "Non-simple cross-origin requests (methods beyond GET/POST-form, custom headers, JSON content type) trigger a preflight; the server must answer with matching Access-Control-Allow-* headers.",
		Difficulty:  3,
		Source:      SourceBank,
	},
	{
		Topic:       "apis",
		Text:        "Which fetch API primitive lets you cancel an in-flight request?",
		Format:      FormatShortText,
		Answer:      "AbortController",
		Accepted:    []string{"abort controller", "abortcontroller and its signal", "abort signal"},
		Explanation: "Pass controller.signal to fetch and call controller.abort() to cancel; the promise rejects with an AbortError you can ignore in cleanup.",
		Difficulty:  2,
		Source:      SourceBank,
	},

	// React (5)
	{
		Topic:  "react",
		Text:   "Why must state updates go through the setter from useState instead of mutating the value?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Mutation is slower",
			"The setter schedules a re-render; mutation changes data React never sees",
			"State variables are frozen objects",
			"The setter validates types",
		},
		Answer:      "The setter schedules a re-render; mutation changes data React never sees",
		Explanation: "React compares state by reference and re-renders on setter calls. Mutating an object in place keeps the same reference, so the UI silently goes stale.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:       "react",
		Text:        "Which hook runs side effects after render and cleans up via its return value?",
		Format:      FormatShortText,
		Answer:      "useEffect",
		Accepted:    []string{"use effect", "the useEffect hook"},
		Explanation: "useEffect runs after commit; returning a function registers cleanup that runs before the next effect and on unmount. Subscriptions and timers belong there.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "react",
		Text:   "A list renders with index as the key and items can be reordered. What goes wrong?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Nothing, index keys are recommended",
			"React reuses component state for the wrong items after reorder",
			"The list renders twice",
			"Keys must be numbers, so it throws",
		},
		Answer:      "React reuses component state for the wrong items after reorder",
		Explanation: "Keys tell React which rendered item is which across updates. With index keys, position 0 is always 'the same item', so input values and local state stick to positions instead of data.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "react",
		Text:   "A fetch effect runs on every keystroke because its dependency array lists a filter object built inline. The fix is:",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Remove the dependency array",
			"Depend on the primitive fields (or memoize the object) so the reference is stable",
			"Move the fetch into render",
			"Use componentDidMount instead",
		},
		Answer:      "Depend on the primitive fields (or memoize the object) so the reference is stable",
		Explanation: "Effect deps compare by Object.is. A fresh object literal each render never compares equal, so the effect refires; depend on stable primitives or useMemo the object.",
		Difficulty:  3,
		Source:      SourceBank,
	},
	{
		Topic:       "react",
		Text:        "What hook memoizes an expensive computation against a dependency list?",
		Format:      FormatShortText,
		Answer:      "useMemo",
		Accepted:    []string{"use memo", "the useMemo hook"},
		Explanation: "useMemo recomputes only when a dependency changes. useCallback is the function-valued special case for stable handler references.",
		Difficulty:  2,
		Source:      SourceBank,
	},

	// Design patterns (5)
	{
		Topic:  "design-patterns",
		Text:   "An event emitter where components subscribe to changes is an example of which pattern?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Singleton",
			"Observer",
			"Factory",
			"Adapter",
		},
		Answer:      "Observer",
		Explanation: "Observer decouples a subject from its many listeners: subscribers register callbacks, the subject notifies all on change. DOM events and state stores are built on it.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:       "design-patterns",
		Text:        "Which pattern guarantees a class has exactly one instance with a global access point?",
		Format:      FormatShortText,
		Answer:      "singleton",
		Accepted:    []string{"the singleton pattern"},
		Explanation: "Singleton. In modern JS a module-level instance usually serves the same purpose with less ceremony, which interviewers often accept as the better answer.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "design-patterns",
		Text:   "You wrap a third-party payment client so the rest of the app talks to your own narrow interface. That is:",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Decorator",
			"Adapter",
			"Proxy",
			"Strategy",
		},
		Answer:      "Adapter",
		Explanation: "Adapter converts one interface into the one your code expects, isolating the vendor API so it can be swapped without touching callers.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "design-patterns",
		Text:   "Several interchangeable sorting behaviors selected at runtime is the textbook case for:",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Strategy",
			"Template method",
			"Builder",
			"Composite",
		},
		Answer:      "Strategy",
		Explanation: "Strategy encapsulates each algorithm behind a common interface and lets the caller pick one at runtime, replacing conditionals with composition.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "design-patterns",
		Text:        "HOCs and decorators add behavior to a component without changing its code. Which pattern is that?",
		Format:      FormatShortText,
		Answer:      "decorator",
		Accepted:    []string{"the decorator pattern"},
		Explanation: "Decorator wraps an object with the same interface and layered behavior. Higher-order components are the React rendition of it.",
		Difficulty:  2,
		Source:      SourceBank,
	},

	// TypeScript (5)
	{
		Topic:  "typescript",
		Text:   "interface versus type alias: which statement is true?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Only type aliases can describe object shapes",
			"Interfaces merge across declarations; type aliases cannot be reopened",
			"Type aliases cannot represent unions",
			"Interfaces are erased at runtime but type aliases are not",
		},
		Answer:      "Interfaces merge across declarations; type aliases cannot be reopened",
		Explanation: "Declaration merging is the practical difference: two interface declarations with one name combine, which is how library typings get augmented. Both are erased at compile time.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "typescript",
		Text:        "Which utility type makes every property of T optional?",
		Format:      FormatShortText,
		Answer:      "Partial<T>",
		Accepted:    []string{"partial", "partial<t>"},
		Explanation: "Partial<T> maps each property to an optional one; its dual Required<T> strips the question marks.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:  "typescript",
		Text:   "What does the unknown type require that any does not?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Nothing, they are aliases",
			"Narrowing (a type check) before the value can be used",
			"A runtime validation library",
			"An explicit cast at declaration",
		},
		Answer:      "Narrowing (a type check) before the value can be used",
		Explanation: "unknown is the type-safe top type: you may assign anything to it but must prove its shape (typeof, instanceof, a guard) before use. any disables checking entirely.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "typescript",
		Text:   "A discriminated union of {kind: \"circle\"} | {kind: \"square\"} is narrowed inside a switch on kind. What gives exhaustiveness checking?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"A default case assigning the value to never",
			"An as const assertion",
			"Enabling strictNullChecks",
			"Declaring the union with interface",
		},
		Answer:      "A default case assigning the value to never",
		Explanation: "If every member is handled, the value in default narrows to never and the assignment compiles. Adding a new kind later turns that into a compile error at the switch.",
		Difficulty:  3,
		Source:      SourceBank,
	},
	{
		Topic:       "typescript",
		Text:        "Which keyword narrows a parameter's type inside an if block via a user-defined check, as in 'pet is Fish'?",
		Format:      FormatShortText,
		Answer:      "is",
		Accepted:    []string{"a type predicate", "type predicate", "the is keyword"},
		Explanation: "A type predicate return annotation (pet is Fish) turns a boolean function into a custom type guard the compiler trusts for narrowing.",
		Difficulty:  3,
		Source:      SourceBank,
	},

	// NestJS (5)
	{
		Topic:  "nestjs",
		Text:   "Which decorator marks a class as injectable into other classes via the DI container?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"@Component()",
			"@Injectable()",
			"@Provider()",
			"@Service()",
		},
		Answer:      "@Injectable()",
		Explanation: "@Injectable() registers the class with Nest's DI container; constructor parameter types then drive injection.",
		Difficulty:  1,
		Source:      SourceBank,
	},
	{
		Topic:       "nestjs",
		Text:        "What Nest building block transforms or validates incoming request data before it reaches the handler?",
		Format:      FormatShortText,
		Answer:      "pipe",
		Accepted:    []string{"pipes", "a pipe", "validationpipe"},
		Explanation: "Pipes run on handler arguments; ValidationPipe with class-validator DTOs is the standard request-body validation setup.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "nestjs",
		Text:   "Guards versus interceptors: which statement is correct?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Guards run after the handler; interceptors before",
			"Guards decide whether the handler runs; interceptors wrap around its execution",
			"They are interchangeable",
			"Interceptors can only log",
		},
		Answer:      "Guards decide whether the handler runs; interceptors wrap around its execution",
		Explanation: "A guard's canActivate gates the route (auth lives here). An interceptor sees the call before and after, so mapping responses and timing belong there.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:  "nestjs",
		Text:   "A service from ModuleA must be used in ModuleB. What two things are required?",
		Format: FormatMultipleChoice,
		Choices: []string{
			"Nothing, providers are global",
			"ModuleA exports the service and ModuleB imports ModuleA",
			"ModuleB re-declares the service in its providers",
			"The service is marked @Global()",
		},
		Answer:      "ModuleA exports the service and ModuleB imports ModuleA",
		Explanation: "Providers are module-scoped. Re-declaring in B's providers would create a second instance; @Global() works but is reserved for genuinely app-wide modules.",
		Difficulty:  2,
		Source:      SourceBank,
	},
	{
		Topic:       "nestjs",
		Text:        "Which Nest component catches unhandled exceptions and shapes the error response?",
		Format:      FormatShortText,
		Answer:      "exception filter",
		Accepted:    []string{"exception filters", "a filter", "filters"},
		Explanation: "Exception filters (implementing ExceptionFilter with @Catch) centralize error handling; the built-in one maps HttpException to JSON responses.",
		Difficulty:  2,
		Source:      SourceBank,
	},
}
